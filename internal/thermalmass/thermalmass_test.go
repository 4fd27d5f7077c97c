package thermalmass

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestScoreAndClassify(t *testing.T) {
	tests := []struct {
		name     string
		wall     string
		floor    string
		interior string
		want     Class
	}{
		{name: "wood frame is light", wall: "wood_frame", floor: "wood", want: ClassLight},
		{name: "empty is light", want: ClassLight},
		{name: "brick veneer with slab is medium", wall: "brick veneer", floor: "slab on grade", want: ClassMedium},
		{name: "concrete walls are medium", wall: "concrete", want: ClassMedium},
		{name: "masonry with concrete slab is heavy", wall: "masonry block", floor: "concrete slab", want: ClassHeavy},
		{name: "icf with tile is heavy", wall: "icf", floor: "tile over concrete", want: ClassHeavy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(Score(tt.wall, tt.floor, tt.interior)))
		})
	}
}

func TestClassFactors(t *testing.T) {
	t.Run("CoolingDamps", func(t *testing.T) {
		assert.InDelta(t, 1.0, CoolingFactor(ClassLight), 1e-9)
		assert.InDelta(t, 0.95, CoolingFactor(ClassMedium), 1e-9)
		assert.InDelta(t, 0.90, CoolingFactor(ClassHeavy), 1e-9)
	})

	t.Run("HeatingGrows", func(t *testing.T) {
		assert.InDelta(t, 1.0, HeatingFactor(ClassLight), 1e-9)
		assert.InDelta(t, 1.02, HeatingFactor(ClassMedium), 1e-9)
		assert.InDelta(t, 1.05, HeatingFactor(ClassHeavy), 1e-9)
	})
}

func TestRoomSensitivity(t *testing.T) {
	// Living spaces see the full mass effect; kitchens and baths are
	// dominated by internal gains and see half of it.
	assert.InDelta(t, 1.0, Sensitivity(model.RoomLiving), 1e-9)
	assert.InDelta(t, 0.5, Sensitivity(model.RoomKitchen), 1e-9)
	assert.InDelta(t, 0.5, Sensitivity(model.RoomBathroom), 1e-9)

	t.Run("CoolingBlend", func(t *testing.T) {
		full := RoomCoolingFactor(ClassHeavy, model.RoomLiving)
		reduced := RoomCoolingFactor(ClassHeavy, model.RoomKitchen)
		assert.InDelta(t, 0.90, full, 1e-9)
		assert.InDelta(t, 0.95, reduced, 1e-9)
		assert.InDelta(t, 1.0, RoomCoolingFactor(ClassLight, model.RoomLiving), 1e-9)
	})

	t.Run("HeatingBlend", func(t *testing.T) {
		assert.InDelta(t, 1.05, RoomHeatingFactor(ClassHeavy, model.RoomDining), 1e-9)
		assert.InDelta(t, 1.025, RoomHeatingFactor(ClassHeavy, model.RoomBathroom), 1e-9)
	})
}

func TestTimeLag(t *testing.T) {
	assert.Less(t, TimeLagHours(ClassLight), TimeLagHours(ClassMedium))
	assert.Less(t, TimeLagHours(ClassMedium), TimeLagHours(ClassHeavy))

	// Evening wrap-around.
	assert.Equal(t, 1, PeakLoadHour(ClassHeavy, 20))
	assert.Equal(t, 17, PeakLoadHour(ClassLight, 16))
}

func TestClassJSON(t *testing.T) {
	data, err := json.Marshal(ClassHeavy)
	require.NoError(t, err)
	assert.JSONEq(t, `"heavy"`, string(data))

	var c Class
	require.NoError(t, json.Unmarshal([]byte(`"medium"`), &c))
	assert.Equal(t, ClassMedium, c)

	assert.Error(t, json.Unmarshal([]byte(`"granite"`), &c))
}
