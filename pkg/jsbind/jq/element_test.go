package jq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_Attr(t *testing.T) {
	handle := fakeHandle{id: "a"}
	driver := &fakeDriver{handler: func(script string, args ...any) (any, error) {
		require.Equal(t, "return $(arguments[0]).attr(arguments[1])", script)
		require.Equal(t, []any{handle, "href"}, args)
		return "/docs", nil
	}}

	el := NewElement(driver, handle)
	val, err := el.Attr(context.Background(), "href")
	require.NoError(t, err)
	assert.Equal(t, "/docs", val)
}

func TestElement_SetAttr(t *testing.T) {
	handle := fakeHandle{id: "a"}
	driver := &fakeDriver{handler: func(script string, args ...any) (any, error) {
		require.Equal(t, "$(arguments[0]).attr(arguments[1], arguments[2])", script)
		require.Equal(t, []any{handle, "class", "active"}, args)
		return nil, nil
	}}

	el := NewElement(driver, handle)
	require.NoError(t, el.SetAttr(context.Background(), "class", "active"))
}

func TestElement_Click(t *testing.T) {
	driver := &fakeDriver{handler: func(script string, args ...any) (any, error) {
		assert.Equal(t, "arguments[0].scrollIntoView(); arguments[0].click();", script)
		return nil, nil
	}}

	el := NewElement(driver, fakeHandle{id: "a"})
	require.NoError(t, el.Click(context.Background()))
}

func TestElement_Click_SettleWait(t *testing.T) {
	driver := &fakeDriver{handler: func(string, ...any) (any, error) {
		return nil, nil
	}}

	el := NewElement(driver, fakeHandle{id: "a"})
	start := time.Now()
	require.NoError(t, el.Click(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestElement_Click_SettleWaitCancelled(t *testing.T) {
	driver := &fakeDriver{handler: func(string, ...any) (any, error) {
		return nil, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	el := NewElement(driver, fakeHandle{id: "a"})
	err := el.Click(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestElement_Click_RemoteFailure(t *testing.T) {
	remoteErr := errors.New("remote: element detached")
	driver := &fakeDriver{handler: func(string, ...any) (any, error) {
		return nil, remoteErr
	}}

	el := NewElement(driver, fakeHandle{id: "a"})
	err := el.Click(context.Background())
	assert.ErrorIs(t, err, remoteErr)
}

func TestElement_Text(t *testing.T) {
	driver := &fakeDriver{handler: func(script string, args ...any) (any, error) {
		require.Equal(t, "return $(arguments[0]).text()", script)
		return "hello", nil
	}}

	el := NewElement(driver, fakeHandle{id: "a"})
	text, err := el.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestElement_Object_DefinitionRoot(t *testing.T) {
	driver := &fakeDriver{}
	el := NewElement(driver, fakeHandle{id: "a"})

	assert.Equal(t, "$(arguments[0])", el.Object().Definition())
	assert.Equal(t, "arguments[0]", el.AsObject().Definition())
	assert.Equal(t, fakeHandle{id: "a"}, el.AsObject().Value())
}

func TestElement_ObjectCall_ArgumentOffset(t *testing.T) {
	handle := fakeHandle{id: "a"}
	driver := &fakeDriver{handler: func(script string, args ...any) (any, error) {
		switch script {
		case "return typeof($(arguments[0]).addClass)":
			return "function", nil
		case "return $(arguments[0]).addClass.length":
			return float64(1), nil
		case "return $(arguments[0]).addClass(arguments[1])":
			require.Equal(t, []any{handle, "active"}, args)
			return nil, nil
		}
		return nil, errors.New("unexpected script: " + script)
	}}

	el := NewElement(driver, handle)
	_, err := el.Object().Call(context.Background(), "addClass", "active")
	require.NoError(t, err)
}
