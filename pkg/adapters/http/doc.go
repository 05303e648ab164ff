// Package http serves puzzle plans and exploration graphs over a chi router.
//
//	GET  /health
//	GET  /info
//	GET  /puzzles
//	POST /puzzles/{id}/solve
//	GET  /puzzles/{id}/plan
//	GET  /puzzles/{id}/graph?format=mermaid|dot
//	GET  /metrics (when configured)
package http
