package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteFactorTablePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFactorTable(&buf, "pretty", terzaghi.FactorTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 44)
	assert.Contains(t, lines[0], "Terzaghi bearing capacity factors")
	assert.Contains(t, lines[32], "37.2")
	assert.Contains(t, lines[43], "148.5")
}

func TestWriteFactorTableCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFactorTable(&buf, "csv", terzaghi.FactorTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 43)
	assert.Equal(t, []string{"angle", "nc", "nq", "ngamma"}, records[0])
	assert.Equal(t, []string{"30", "37.2", "22.5", "20.1"}, records[31])
}

func TestWriteFactorTableJSONAndYAML(t *testing.T) {
	var jsonBuf bytes.Buffer
	require.NoError(t, WriteFactorTable(&jsonBuf, "json", terzaghi.FactorTable()))
	var fromJSON []terzaghi.AngleFactors
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, terzaghi.FactorTable(), fromJSON)

	var yamlBuf bytes.Buffer
	require.NoError(t, WriteFactorTable(&yamlBuf, "yaml", terzaghi.FactorTable()))
	var fromYAML []terzaghi.AngleFactors
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, terzaghi.FactorTable(), fromYAML)
}

func TestWriteFactorTableUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteFactorTable(&buf, "xml", terzaghi.FactorTable()))
}
