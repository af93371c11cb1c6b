package whisper_cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	data := []byte(`{
		"result": {"language": "en"},
		"transcription": [
			{"text": " Hello there.", "offsets": {"from": 0, "to": 1500}},
			{"text": " General Kenobi. ", "offsets": {"from": 1500, "to": 3200}}
		]
	}`)

	result, err := parseOutput(data)
	require.NoError(t, err)

	assert.Equal(t, "Hello there. General Kenobi.", result.Text)
	assert.Equal(t, "en", result.Language)
	assert.InDelta(t, 3.2, result.Duration, 1e-9)
	assert.InDelta(t, 1.0, result.LanguageProbability, 1e-9)
}

func TestParseOutput_Empty(t *testing.T) {
	result, err := parseOutput([]byte(`{"result": {"language": "auto"}, "transcription": []}`))
	require.NoError(t, err)

	assert.Empty(t, result.Text)
	assert.Zero(t, result.Duration)
}

func TestParseOutput_Malformed(t *testing.T) {
	_, err := parseOutput([]byte(`not json`))
	assert.Error(t, err)
}
