package main

import (
	"github.com/mj1618/gamectl/cmd"
	_ "github.com/mj1618/gamectl/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
