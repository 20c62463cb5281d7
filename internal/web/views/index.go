// Package views renders the HTML shell that boots the browser scene.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ddiliberto123/threejs-project/internal/protocol"
)

// IndexPage renders the board page. The snapshot travels as a JSON script
// tag that scene.js reads before building the three.js scene; later boards
// arrive over the websocket stream.
func IndexPage(s protocol.BoardSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, indexHead); err != nil {
			return err
		}
		if err := templ.JSONScript("board-snapshot", s).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, indexTail)
		return err
	})
}

const indexHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Hex Board</title>
<link rel="stylesheet" href="/static/css/site.css"/>
<script type="importmap">
{
  "imports": {
    "three": "https://unpkg.com/three@0.160.0/build/three.module.js",
    "three/addons/": "https://unpkg.com/three@0.160.0/examples/jsm/"
  }
}
</script>
</head>
<body>
<header id="toolbar">
  <h1>Hex Board</h1>
  <span id="seed-label"></span>
  <span id="renderers-label"></span>
  <button id="regenerate" type="button">New board</button>
  <a id="share-link" href="#" title="Share this board"><img id="share-qr" alt="share QR" width="48" height="48"/></a>
  <span id="fallback-notice" hidden>layout unvalidated: attempt budget exhausted</span>
</header>
<div id="scene-root"></div>
`

const indexTail = `<script type="module" src="/static/js/scene.js"></script>
</body>
</html>
`
