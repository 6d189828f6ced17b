package server

import "html/template"

type indexData struct {
	ShortestPrompt template.HTML
	LongestPrompt  template.HTML
}

// indexPage hosts both prompts and fetches the response fragments from
// /shortest and /longest.
var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Campus Navigator</title>
</head>
<body>
<h1>Campus Navigator</h1>
<section id="shortest">
{{ .ShortestPrompt }}
<div id="shortest-result"></div>
</section>
<section id="longest">
{{ .LongestPrompt }}
<div id="longest-result"></div>
</section>
<script>
function bind(section, path, fields) {
  const root = document.getElementById(section);
  root.querySelector('input[type=button]').addEventListener('click', async () => {
    const q = new URLSearchParams();
    for (const [param, id] of fields) q.set(param, document.getElementById(id).value);
    const resp = await fetch(path + '?' + q.toString());
    document.getElementById(section + '-result').innerHTML = await resp.text();
  });
}
bind('shortest', '/shortest', [['start', 'start'], ['end', 'end']]);
bind('longest', '/longest', [['start', 'from']]);
</script>
</body>
</html>
`))
