package pkg

import "math"

// CityData holds the running statistics of one key in fixed-point tenths.
// A zero Count means nothing was observed and Min/Max hold sentinels.
type CityData struct {
	Min, Max int32
	Sum      int64
	Count    uint64
}

func EmptyCityData() CityData {
	return CityData{Min: math.MaxInt32, Max: math.MinInt32}
}

func NewCityData(value int32) CityData {
	return CityData{Min: value, Max: value, Sum: int64(value), Count: 1}
}

func (cd *CityData) Merge(other *CityData) {
	if other == nil {
		return
	}

	cd.Min = min(cd.Min, other.Min)
	cd.Max = max(cd.Max, other.Max)
	cd.Sum += other.Sum
	cd.Count += other.Count
}

func (cd *CityData) MergeValue(value int32) {
	cd.Min = min(cd.Min, value)
	cd.Max = max(cd.Max, value)
	cd.Sum += int64(value)
	cd.Count++
}

// MeanIndec is the mean in tenths, rounded half up.
func (cd CityData) MeanIndec() int64 {
	return int64(math.Floor(float64(cd.Sum)/float64(cd.Count) + 0.5))
}

func (cd CityData) Min32() float32 { return float32(cd.Min) / 10 }
func (cd CityData) Max32() float32 { return float32(cd.Max) / 10 }

func (cd CityData) Mean32() float32 {
	return float32(float64(cd.Sum) / float64(cd.Count) / 10)
}
