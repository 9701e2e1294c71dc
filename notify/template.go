package notify

import (
	"fmt"
	"html"
)

func renderHTML(appName, title, message, link string) string {
	action := ""
	if link != "" {
		action = fmt.Sprintf(`<a href="%s" class="btn">Open</a>`, html.EscapeString(link))
	}
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1F3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1F3A5F; line-height: 1.6; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2E7D32; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">
				<h2>%s</h2>
				<p>%s</p>
				%s
			</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(appName), html.EscapeString(title), html.EscapeString(message), action)
}

func renderText(title, message, link string) string {
	text := title + "\n\n" + message
	if link != "" {
		text += "\n\n" + link
	}
	return text
}
