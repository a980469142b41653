// Package page holds the HTML shell around the feed components.
package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const feedPage = `<!DOCTYPE html>
<html>
<head>
<title>atail</title>
<style>
body { font-family: monospace; background: #1b1b1b; color: #d0d0d0; margin: 0; }
header { padding: 8px 16px; border-bottom: 1px solid #333; }
main { display: flex; gap: 16px; padding: 16px; }
.feed { flex: 1; height: 85vh; overflow-y: auto; }
.message { border-left: 3px solid #444; margin: 8px 0; padding: 4px 8px; }
.message .title { margin: 0 0 4px 0; font-size: 0.9em; color: #aaa; }
.message .body { margin: 0; white-space: pre-wrap; }
.message .badge { display: inline-block; padding: 0 6px; margin-right: 6px;
  border-radius: 3px; background: #5a56e0; color: #fff; font-size: 0.85em; }
.message.thought { border-left-color: #ee6ff8; }
.message.action { border-left-color: #5a56e0; }
.message.observation { border-left-color: #02ba84; }
.message.warn, .message.error { border-left-color: #d0a215; }
.message.unknown { border-left-color: #666; color: #888; }
.message.highlight { background: #303030; }
</style>
</head>
<body>
<header>atail &mdash; live agent run</header>
<main>
<div id="agent-feed" class="feed"></div>
<div id="env-feed" class="feed"></div>
</main>
<script>
// Highlight tracking lives here, not in the components: on every hover the
// previous highlight is dropped and the hovered item is kept in view inside
// the container it names.
function atailHover(el, containerID) {
  const container = document.getElementById(containerID);
  for (const other of document.querySelectorAll('.message.highlight')) {
    other.classList.remove('highlight');
  }
  el.classList.add('highlight');
  if (container && (el.offsetTop < container.scrollTop ||
      el.offsetTop > container.scrollTop + container.clientHeight)) {
    el.scrollIntoView({ block: 'nearest' });
  }
}

const source = new EventSource('/events');
function subscribe(event, containerID) {
  const container = document.getElementById(containerID);
  source.addEventListener(event, (e) => {
    container.insertAdjacentHTML('beforeend', e.data);
    container.scrollTop = container.scrollHeight;
  });
}
subscribe('agent', 'agent-feed');
subscribe('env', 'env-feed');
</script>
</body>
</html>
`

// Feed is the single page served by the web surface.
func Feed() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, feedPage)
		return err
	})
}
