package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 1, 1)
	AssertEqual(t, "METRO", "METRO")
	AssertEqual(t, true, true)
}

func TestAssertSliceEqual(t *testing.T) {
	AssertSliceEqual(t, []string{"METRO", "CERCANIAS"}, []string{"METRO", "CERCANIAS"})
	AssertSliceEqual(t, []int{}, []int{})
}

func TestAssertNil(t *testing.T) {
	AssertNil(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("test error"))
}

func TestAssertErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, "GetLines.php?mode=4", "mode=4")
	AssertContains(t, "GetLines.php", "")
}

func TestAssertNotContains(t *testing.T) {
	AssertNotContains(t, "GetLines.php?mode=4", "codMunicipality")
}

func TestAssertFloatEqual(t *testing.T) {
	AssertFloatEqual(t, 40.4168, 40.41680001, 1e-6)
}

func TestAssertTrueFalse(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, 1 == 1)
	AssertFalse(t, false)
	AssertFalse(t, 1 == 2)
}

func TestAssertLen(t *testing.T) {
	AssertLen(t, []int{1, 2, 3}, 3)
	AssertLen(t, []string{}, 0)
}
