package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomTypeSynonyms(t *testing.T) {
	tests := []struct {
		in   string
		want RoomType
	}{
		{in: "bedroom", want: RoomBedroom},
		{in: "Master Bedroom", want: RoomBedroom},
		{in: "great room", want: RoomLiving},
		{in: "den", want: RoomLiving},
		{in: "laundry", want: RoomUtility},
		{in: "powder room", want: RoomBathroom},
		{in: "study", want: RoomOffice},
		{in: "sunroom", want: RoomOther},
		{in: "", want: RoomOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoomType(tt.in))
		})
	}
}

func TestRoomTypeJSONLenient(t *testing.T) {
	// Unknown labels from a drifting extractor vocabulary degrade to
	// RoomOther instead of failing the whole building.
	var rt RoomType
	require.NoError(t, json.Unmarshal([]byte(`"conservatory"`), &rt))
	assert.Equal(t, RoomOther, rt)
}

func TestParseOrientation(t *testing.T) {
	assert.Equal(t, OrientationNE, ParseOrientation("northeast"))
	assert.Equal(t, OrientationW, ParseOrientation(" w "))
	assert.Equal(t, OrientationUnknown, ParseOrientation("up"))
}

func TestStrictEnumsReject(t *testing.T) {
	var d DuctConfig
	assert.Error(t, json.Unmarshal([]byte(`"ducted_wall"`), &d))

	var f FoundationType
	assert.Error(t, json.Unmarshal([]byte(`"pier"`), &f))

	var v Vintage
	assert.Error(t, json.Unmarshal([]byte(`"victorian"`), &v))
	require.NoError(t, json.Unmarshal([]byte(`"current-code"`), &v))
	assert.Equal(t, VintageCurrentCode, v)
}
