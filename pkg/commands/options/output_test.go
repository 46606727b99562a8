package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := OutputOptions{JSON: true, Out: &buf}
	err := o.HandleError(errors.New("boom"))
	if err == nil || err.Error() != "boom" {
		t.Fatalf("error should be returned, got %v", err)
	}
	if buf.String() != "{\"error\":\"boom\"}\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestHandleErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	o := OutputOptions{Out: &buf}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected the error back")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be printed without --json, got %q", buf.String())
	}
}
