package notesv1

import "embed"

// SwaggerFS OpenAPI описание REST маршрутов gateway
//
//go:embed notes.swagger.json
var SwaggerFS embed.FS

// SwaggerFile имя файла спецификации в SwaggerFS
const SwaggerFile = "notes.swagger.json"
