package eox

import (
	"html"
	"strings"

	"eox-sync/core/reconcile"
)

// NoChangesMessage is rendered for a query without reportable actions.
const NoChangesMessage = "No changes required."

// RenderQuery renders the actions of one query as an HTML fragment.
// Unchanged and missing products are not listed; a query with nothing
// to list renders NoChangesMessage.
func RenderQuery(query string, actions []reconcile.Action) string {
	var b strings.Builder
	b.WriteString(`<div style="text-align:left;"><h3>Query: `)
	b.WriteString(html.EscapeString(query))
	b.WriteString(`</h3>`)

	var items strings.Builder
	for _, a := range actions {
		id := html.EscapeString(a.Key)
		switch a.Type {
		case reconcile.ActionCreated:
			items.WriteString(`<li>create the Product <code>` + id + `</code> in the database</li>`)
		case reconcile.ActionUpdated:
			items.WriteString(`<li>update the Product data for <code>` + id + `</code></li>`)
		case reconcile.ActionSkippedBlacklisted:
			items.WriteString(`<li>Product data for <code>` + id + `</code> ignored</li>`)
		}
	}

	if items.Len() == 0 {
		b.WriteString(NoChangesMessage)
	} else {
		b.WriteString(`The following products are affected by this update:</p><ul>`)
		b.WriteString(items.String())
		b.WriteString(`</ul>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

// RenderReport concatenates the rendered queries in order.
func RenderReport(results []QueryResult) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(RenderQuery(r.Query, r.Actions))
	}
	return b.String()
}
