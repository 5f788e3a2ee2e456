package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"ERROR", SeverityError, false},
		{"warning", SeverityWarning, false},
		{"warn", SeverityWarning, false},
		{" Info ", SeverityInfo, false},
		{"off", SeverityOff, false},
		{"fatal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSeverityYAML(t *testing.T) {
	t.Parallel()

	checks := map[string]ConfigCheck{
		"cnf":      {Severity: SeverityInfo},
		"validate": {Severity: SeverityError},
	}
	out, err := yaml.Marshal(checks)
	require.NoError(t, err)
	assert.Contains(t, string(out), "severity: INFO")

	var decoded map[string]ConfigCheck
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, checks, decoded)

	err = yaml.Unmarshal([]byte("cnf:\n  severity: LOUD\n"), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSeverityJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Report{Check: "cnf", Severity: SeverityWarning, Line: 3})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Severity":"WARNING"`)
	assert.Equal(t, "UNKNOWN", Severity(42).String())
}
