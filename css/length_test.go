package css_test

import (
	"testing"

	"github.com/npillmayer/stml/css"
)

func TestLengthBasic(t *testing.T) {
	ten := css.ParseLength("10")
	var n int
	switch m := ten.Match(); m {
	case m.Pixels(&n):
		t.Logf("n = %d", n)
	default:
		t.Errorf("expected 10 to be a pixel length, isn't: %#v", ten)
	}
	if ten.String() != "10px" {
		t.Errorf("expected 10px, got %q", ten.String())
	}

	pcnt := css.ParseLength("80%")
	var s string
	switch m := pcnt.Match(); m {
	case m.Pixels(nil):
		t.Errorf("expected 80%% not to be a pixel length")
	case m.Verbatim(&s):
		t.Logf("verbatim = %s", s)
	default:
		t.Errorf("expected 80%% to be verbatim, isn't: %#v", pcnt)
	}
	if pcnt.String() != "80%" {
		t.Errorf("expected 80%%, got %q", pcnt.String())
	}
}

func TestLengthNone(t *testing.T) {
	var l css.Length
	if l.String() != "" {
		t.Errorf("expected zero length to be none, is %#v", l)
	}
	if m := l.Match(); m.Pixels(nil) != nil || m.Verbatim(nil) != nil {
		t.Errorf("expected zero length not to match")
	}
	if css.ParseLength("-3").String() != "-3px" {
		t.Errorf("expected negative numbers to be pixel lengths")
	}
	if css.Px("1.5") != "1.5px" {
		t.Errorf("expected Px to append unit")
	}
}
