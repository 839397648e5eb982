package domain

// ForecastPoint is one future hour of predicted demand.
type ForecastPoint struct {
	Hour           string  `json:"hour"`
	Datetime       string  `json:"datetime"`
	PredictedRides int     `json:"predicted_rides"`
	Confidence     float64 `json:"confidence"`
}

type DemandForecast struct {
	Region               string             `json:"region"`
	HoursAhead           int                `json:"hours_ahead"`
	Model                string             `json:"model"`
	Predictions          []ForecastPoint    `json:"predictions"`
	FeatureImportances   map[string]float64 `json:"feature_importances"`
	TotalTrainingSamples int                `json:"total_training_samples"`
}

// HourEntry is one hour of the 24-hour ride distribution.
type HourEntry struct {
	Hour   int     `json:"hour"`
	Label  string  `json:"label"`
	Rides  int     `json:"rides"`
	IsPeak bool    `json:"is_peak"`
	ZScore float64 `json:"z_score"`
}

type PeakHourReport struct {
	Threshold          float64     `json:"threshold"`
	Mean               float64     `json:"mean"`
	Std                float64     `json:"std"`
	TotalRidesAnalyzed int         `json:"total_rides_analyzed"`
	PeakHours          []HourEntry `json:"peak_hours"`
	AllHours           []HourEntry `json:"all_hours"`
}

type Bottleneck struct {
	Hour       int      `json:"hour"`
	Label      string   `json:"label"`
	Issues     []string `json:"issues"`
	Severity   string   `json:"severity"`
	CancelRate float64  `json:"cancel_rate"`
	SearchRate float64  `json:"search_rate"`
	TotalRides int      `json:"total_rides"`
	Suggestion string   `json:"suggestion"`
}

type VehicleCancelRate struct {
	VehicleCategory VehicleCategory `json:"vehicleCategory"`
	Total           int             `json:"total"`
	Canceled        int             `json:"canceled"`
	CancelRate      float64         `json:"cancel_rate"`
}

type BottleneckReport struct {
	Bottlenecks             []Bottleneck        `json:"bottlenecks"`
	CancelThreshold         float64             `json:"cancel_threshold"`
	SearchThreshold         float64             `json:"search_threshold"`
	VehicleCancelRates      []VehicleCancelRate `json:"vehicle_cancel_rates"`
	OptimizationSuggestions []string            `json:"optimization_suggestions"`
	AnalyzedRides           int                 `json:"analyzed_rides"`
}

// FleetAllocation is the sizing recommendation for one vehicle category.
type FleetAllocation struct {
	TotalRides           int     `json:"total_rides"`
	PeakDemandPerHour    int     `json:"peak_demand_per_hour"`
	AvgDemandPerHour     float64 `json:"avg_demand_per_hour"`
	RecommendedFleetSize int     `json:"recommended_fleet_size"`
	PeakHours            []int   `json:"peak_hours"`
}

type FleetReport struct {
	Allocations           map[VehicleCategory]FleetAllocation `json:"allocations"`
	OverallRecommendation string                              `json:"overall_recommendation"`
	AnalyzedPeriodDays    int                                 `json:"analyzed_period_days"`
	TotalRidesAnalyzed    int                                 `json:"total_rides_analyzed"`
}

type MonthlyTrend struct {
	Month   string  `json:"month"`
	Saved   float64 `json:"saved"`
	Emitted float64 `json:"emitted"`
}

type SustainabilityReport struct {
	TotalCO2SavedKg       float64        `json:"total_co2_saved_kg"`
	TotalCO2EmittedKg     float64        `json:"total_co2_emitted_kg"`
	PoolingCO2SavedKg     float64        `json:"pooling_co2_saved_kg"`
	NetReductionPct       float64        `json:"net_reduction_pct"`
	TreesEquivalent       float64        `json:"trees_equivalent"`
	CarsOffRoadEquivalent float64        `json:"cars_off_road_equivalent"`
	MonthlyTrend          []MonthlyTrend `json:"monthly_trend"`
	TotalRides            int            `json:"total_rides"`
	PooledRides           int            `json:"pooled_rides"`
	SustainabilityGrade   string         `json:"sustainability_grade"`
}

type HealthStatus struct {
	Status              string `json:"status"`
	DataSourceConnected bool   `json:"data_source_connected"`
	CacheAvailable      bool   `json:"cache_available"`
}
