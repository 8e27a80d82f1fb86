package core

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	//
	err := Error(EINVALID, "page of %dx%d", 10, 20)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "page of 10x20", UserMessage(err))
	assert.Equal(t, "[123] page of 10x20: invalid", err.Error())
}

func TestWrapError(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EMISSING, "no font %s", "Vollkorn")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	outer := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
	assert.Equal(t, "no font Vollkorn", UserMessage(outer))
	//
	err = ErrorWithCode(nil, EFORMAT)
	assert.Equal(t, "[124] format error", err.Error())
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(WrapError(nil, EINTERNAL, "x")))
}
