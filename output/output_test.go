package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/avalanche/asm"
)

// memFile is an in-memory file.
type memFile struct {
	bytes.Buffer
	closed bool
}

func (mf *memFile) Close() error {
	mf.closed = true
	return nil
}

// memFS is an in-memory CreateFS.
type memFS map[string]*memFile

func (fs memFS) Create(name string) (file io.WriteCloser, err error) {
	mf := &memFile{}
	fs[name] = mf
	return mf, nil
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func assemble(t *testing.T) *asm.Program {
	var lines []string
	lines = append(lines, ".reg a 5", `.data msg "ok"`)
	for _, name := range []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6.x", "p6.y"} {
		lines = append(lines, "process "+name, "add a, a, a", "endprocess")
	}

	assembler := &asm.Assembler{}
	prog, err := assembler.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t)
	fs := memFS{}

	err := Write(fs, DefaultFiles("prog.asm"), prog, false)
	assert.NoError(err)

	names := make([]string, 0, len(fs))
	for name, file := range fs {
		names = append(names, name)
		assert.True(file.closed, name)
	}
	slices.Sort(names)
	assert.Equal([]string{"config.v", "dta_data", "inst_data", "pc_data", "prog.asm.lst", "reg_data", "seq_data"}, names)

	assert.Equal(strings.Repeat("00000000\n", 8), fs["inst_data"].String())
	assert.Equal("6f\n6b\n00\n", fs["dta_data"].String())
	assert.Equal("0005\n", fs["reg_data"].String())
	assert.Equal("0000\n0001\n0002\n0003\n0004\n0005\n0006\n0007\n", fs["pc_data"].String())
	assert.Equal(
		"0000\n0001\n0002\n0003\n0004\n0005\n0006\n"+
			"0000\n0001\n0002\n0003\n0004\n0005\n0007\n", fs["seq_data"].String())
	assert.Equal("// These are assembler maintained constants.\n// Do not change manually.\n\nparameter process_count = 7;",
		fs["config.v"].String())
	assert.True(strings.HasPrefix(fs["prog.asm.lst"].String(), "0000....0005........ .reg a 5\n"))

	assert.Equal("processes 7, registers 1, data 3, instructions 8", Summary(prog))
}

func TestWriteSelected(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t)
	fs := memFS{}

	err := Write(fs, Files{Registers: "regs"}, prog, false)
	assert.NoError(err)
	assert.Equal(1, len(fs))
	assert.Equal("0005\n", fs["regs"].String())
}

func TestWriteLinesError(t *testing.T) {
	assert := assert.New(t)

	err := WriteLines(failWriter{}, slices.Values([]string{"a", "b"}))
	assert.Error(err)
	assert.Contains(err.Error(), "write failed")
	assert.Contains(err.Error(), "disk full")

	err = Config(failWriter{}, 7)
	assert.Error(err)
}

func TestDir(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	prog := assemble(t)

	err := Write(Dir(dir), Files{Config: "config.v"}, prog, false)
	assert.NoError(err)

	data, err := os.ReadFile(filepath.Join(dir, "config.v"))
	assert.NoError(err)
	assert.True(strings.HasSuffix(string(data), "parameter process_count = 7;"))

	err = Write(Dir(filepath.Join(dir, "missing")), Files{Config: "config.v"}, prog, false)
	assert.Error(err)
	assert.Contains(err.Error(), "config.v")
}
