// cmd/conserv/main.go
package main

import (
	"conserv/internal/app"
	"conserv/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
