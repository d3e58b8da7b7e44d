package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
	assert.Equal(t, os.Stdin, stdio.in)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	_, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

// Несколько чтений подряд из одного потока не теряют данные
func TestReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("  first \nsecond\nlast"), &out)

	first, err := stdio.ReadInput("A: ")
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := stdio.ReadInput("B: ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	// Последняя строка без перевода строки
	last, err := stdio.ReadInput("C: ")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = stdio.ReadInput("D: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "A: B: C: D: ", out.String())
}

// Не терминал: пароль читается как обычная строка
func TestReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("secret\n"), &out)

	pw, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
	assert.Equal(t, "Password: ", out.String())
}

// Pipe тоже не терминал
func TestReadPassword_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte("piped\n"))
		_ = w.Close()
	}()
	defer func() { _ = r.Close() }()

	stdio := NewStdioWith(r, io.Discard)
	pw, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "piped", pw)
}
