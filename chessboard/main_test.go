package chessboard

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	InitializeMagicBitboards()
	os.Exit(m.Run())
}
