package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const rootPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Iris Prediction API</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; background-color: #f7f9fc; color: #333; }
    h1 { color: #2c3e50; }
    ul { list-style-type: square; padding-left: 20px; }
    .footer { margin-top: 40px; font-size: 0.9em; color: #777; }
  </style>
</head>
<body>
  <h1>Iris Prediction API</h1>
  <p>REST API that predicts iris species from sepal and petal measurements.</p>

  <h2>Endpoints</h2>
  <ul>
    <li><code>GET  /</code>            &ndash; this page</li>
    <li><code>POST /login</code>       &ndash; authenticate and obtain a JWT</li>
    <li><code>POST /predict</code>     &ndash; run a prediction (JWT protected)</li>
    <li><code>GET  /predictions</code> &ndash; list past predictions (JWT protected)</li>
    <li><code>GET  /health</code>      &ndash; service and database status</li>
  </ul>

  <div class="footer">&copy; %d Iris Prediction API</div>
</body>
</html>`

// Root maneja GET /: página HTML de bienvenida con la lista de endpoints.
func Root(c *gin.Context) {
	page := fmt.Sprintf(rootPageTemplate, time.Now().UTC().Year())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
