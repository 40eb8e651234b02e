package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"notes-calendar/internal/model"
)

// Сырой HTML в заметках не пропускается: goldmark без html.WithUnsafe
// заменяет его комментарием.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown рендерит содержимое заметки в HTML фрагмент
func Markdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var previewPage = template.Must(template.New("preview").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<article>
<header><h1>{{.Title}}</h1><time datetime="{{.Date}}">{{.Date}}</time></header>
{{.Body}}
</article>
</body>
</html>
`))

// Preview страница предпросмотра заметки. date каноническая дата заметки.
func Preview(note model.Note, date string) ([]byte, error) {
	body, err := Markdown(note.Content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = previewPage.Execute(&buf, struct {
		Title string
		Date  string
		Body  template.HTML
	}{
		Title: note.DisplayTitle(),
		Date:  date,
		Body:  body,
	})
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	return buf.Bytes(), nil
}
