package validate

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTagValidator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.validate")
	defer teardown()
	//
	v := Tag("required,email")
	if err := v.Validate("me@example.com"); err != nil {
		t.Errorf("expected valid email to pass, error is %v", err)
	}
	if err := v.Validate("not an email"); err == nil {
		t.Errorf("expected invalid email to fail")
	}
	if err := v.Validate(nil); err == nil {
		t.Errorf("expected nil to fail 'required'")
	}
}

func TestEmptyAndBrokenTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.validate")
	defer teardown()
	//
	if err := Tag("").Validate("x"); err != nil {
		t.Errorf("expected empty tag to accept anything, error is %v", err)
	}
	if err := Tag("no-such-check").Validate("x"); err == nil {
		t.Errorf("expected unknown validation tag to be reported")
	}
}
