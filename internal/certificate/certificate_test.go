package certificate

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakomon/internal/completion"
)

func testRecord() completion.Record {
	return completion.Record{
		ID:              "rec-1",
		Timestamp:       time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		SittingsLabel:   "2022, 2023",
		CategoriesLabel: "A, B",
		QuestionCount:   20,
		SessionID:       "s1",
	}
}

func TestRender_ProducesDecodablePNG(t *testing.T) {
	data, err := PNGRenderer{}.Render(testRecord())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, imgWidth, bounds.Dx())
	assert.Equal(t, imgHeight, bounds.Dy())
}

func TestRender_Deterministic(t *testing.T) {
	first, err := PNGRenderer{}.Render(testRecord())
	require.NoError(t, err)
	second, err := PNGRenderer{}.Render(testRecord())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
