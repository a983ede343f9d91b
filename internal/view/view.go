// Package view renders the leaderboard view model as an HTML page. It is
// pure presentation; all derived numbers arrive precomputed in the model.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/iqbalbaharum/token-leaderboard/internal/format"
	"github.com/iqbalbaharum/token-leaderboard/internal/types"
)

//go:embed leaderboard.html.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl          *template.Template
	walletBaseUrl string
}

func NewRenderer(walletBaseUrl string) (*Renderer, error) {
	r := &Renderer{walletBaseUrl: walletBaseUrl}

	tmpl, err := template.New("leaderboard.html.tmpl").Funcs(template.FuncMap{
		"compact":   format.Compact,
		"percent":   format.Percent,
		"shortAddr": format.TruncateAddress,
		"walletUrl": r.walletUrl,
	}).ParseFS(templateFS, "leaderboard.html.tmpl")
	if err != nil {
		return nil, err
	}

	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) RenderLeaderboard(w io.Writer, board *types.Leaderboard) error {
	return r.tmpl.Execute(w, board)
}

// walletUrl builds the external wallet-overview link for a holder row.
func (r *Renderer) walletUrl(address string) string {
	return fmt.Sprintf("%s/%s/overview", r.walletBaseUrl, address)
}
