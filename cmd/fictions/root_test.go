package cmd

import (
	"testing"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"21220", 21220, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"12abc", 0, true},
		{"", 0, true},
		{" 12", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryOfNil(t *testing.T) {
	var repo *data.Repository
	assert.Nil(t, historyOf(repo))
}
