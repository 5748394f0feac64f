package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStride(t *testing.T) {
	assert.Equal(t, int32(3), Stride(PositionLayout))
	assert.Equal(t, int32(8), Stride(PositionColorUVLayout))
	assert.Equal(t, int32(0), Stride(nil))
}

func TestValidateMesh(t *testing.T) {
	quad := []float32{
		0.5, 0.5, 0, 1, 0, 0, 1, 1,
		0.5, -0.5, 0, 0, 1, 0, 1, 0,
		-0.5, -0.5, 0, 0, 0, 1, 0, 0,
		-0.5, 0.5, 0, 1, 1, 0, 0, 1,
	}

	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		layout   []Attrib
		wantErr  bool
	}{
		{"indexed quad", quad, []uint32{0, 1, 3, 1, 2, 3}, PositionColorUVLayout, false},
		{"triangle", []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, PositionLayout, false},
		{"index out of range", quad, []uint32{0, 1, 4}, PositionColorUVLayout, true},
		{"partial vertex", quad[:10], nil, PositionColorUVLayout, true},
		{"no vertices", nil, nil, PositionLayout, true},
		{"no layout", quad, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMesh(tt.vertices, tt.indices, tt.layout)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
