package routes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"

	_ "time/tzdata"
)

func testFormatter(t *testing.T) *transform.Formatter {
	t.Helper()

	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	return transform.NewFormatter(location)
}

func TestMapTripWithoutLegs(t *testing.T) {
	trip := mapTrip(vvo.Route{Duration: 7}, testFormatter(t))

	assert.Equal(t, 7, trip.Duration)
	assert.Empty(t, trip.Legs)
	assert.Nil(t, trip.Departure.Time)
	assert.Nil(t, trip.Departure.Station)
	assert.Nil(t, trip.Arrival.Time)
}

func TestMapTripLegWithoutStops(t *testing.T) {
	route := vvo.Route{
		Duration: 5,
		PartialRoutes: []vvo.PartialRoute{
			{Mot: &vvo.Mot{Name: "Fussweg"}, Duration: 5},
		},
	}

	trip := mapTrip(route, testFormatter(t))

	require.Len(t, trip.Legs, 1)
	assert.Equal(t, "Fussweg", trip.Legs[0].Line)
	assert.Nil(t, trip.Legs[0].Departure)
	assert.Nil(t, trip.Departure.Time)
	assert.Nil(t, trip.Arrival.Station)
}

func TestMapLegWithoutMot(t *testing.T) {
	leg := mapLeg(vvo.PartialRoute{Duration: 3}, testFormatter(t))

	assert.Equal(t, "", leg.Line)
	assert.Equal(t, 3, leg.Duration)
}

func TestMapDepartureDefaults(t *testing.T) {
	departure := mapDeparture(vvo.Departure{
		LineName:      "11",
		Direction:     "Zschertnitz",
		ScheduledTime: "2024-03-15T14:30:00Z",
	}, testFormatter(t))

	assert.Equal(t, 0, departure.Delay)
	assert.Equal(t, []string{}, departure.RouteChanges)
	assert.False(t, departure.LowFloor)
	assert.Equal(t, "", departure.Platform)
	require.NotNil(t, departure.Scheduled)
	assert.Equal(t, "15:30", *departure.Scheduled)
	assert.Nil(t, departure.Realtime)
}
