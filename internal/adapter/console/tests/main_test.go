package tests

import (
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/umutulay/task-management-system/pkg/translator"
)

func TestMain(m *testing.M) {
	// Keep assertions on plain text regardless of the terminal.
	color.NoColor = true
	translator.InitTranslator()
	os.Exit(m.Run())
}
