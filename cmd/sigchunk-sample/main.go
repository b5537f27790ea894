// cmd/sigchunk-sample/main.go
package main

import (
	"sigchunk/internal/appshell"
	"sigchunk/internal/sampleapp"
)

func main() {
	appshell.Main(sampleapp.RunContext)
}
