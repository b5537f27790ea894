// cmd/sigchunk/main.go
package main

import (
	"sigchunk/internal/app"
	"sigchunk/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
