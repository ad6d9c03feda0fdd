package ribbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "RP_TAB_home;draw:Button=line_Line", Substitute("%Parent:Button=line_Line", "RP_TAB_home;draw"))
	assert.Equal(t, "Tab=home_Home_Home", Substitute("Tab=home_Home_Home", "ignored"))
	assert.Equal(t, "a|a", Substitute("%Parent|%Parent", "a"))
	assert.Equal(t, ":Label=x_", Substitute("%Parent:Label=x_", ""))
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		prefix, id, want string
	}{
		{"", "", ""},
		{"", "home", "home"},
		{"home", "", "home"},
		{"home", "draw", "home;draw"},
		{"home;draw", "line", "home;draw;line"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.prefix, tt.id), "JoinPath(%q, %q)", tt.prefix, tt.id)
	}
	assert.Equal(t, []string{"home", "draw", "line"}, SplitPath("home;draw;line"))
	assert.Nil(t, SplitPath(""))
}
