package models

type Airport struct {
	AirportName Text `json:"airport_name"`
	IataCode    Text `json:"iata_code"`
	IcaoCode    Text `json:"icao_code"`
	CountryName Text `json:"country_name"`
	Timezone    Text `json:"timezone"`
	Latitude    Text `json:"latitude"`
	Longitude   Text `json:"longitude"`
}

type Airline struct {
	AirlineName Text `json:"airline_name"`
	IataCode    Text `json:"iata_code"`
	IcaoCode    Text `json:"icao_code"`
	Callsign    Text `json:"callsign"`
	CountryName Text `json:"country_name"`
	FleetSize   Text `json:"fleet_size"`
	Status      Text `json:"status"`
	DateFounded Text `json:"date_founded"`
	HubCode     Text `json:"hub_code"`
}

// Airplane is a registered airframe, as listed by /api/aircraft.
type Airplane struct {
	ModelName          Text `json:"model_name"`
	ModelCode          Text `json:"model_code"`
	RegistrationNumber Text `json:"registration_number"`
	IataType           Text `json:"iata_type"`
	ProductionLine     Text `json:"production_line"`
	PlaneOwner         Text `json:"plane_owner"`
	PlaneAge           Text `json:"plane_age"`
	PlaneStatus        Text `json:"plane_status"`
	EnginesCount       Text `json:"engines_count"`
	EnginesType        Text `json:"engines_type"`
}
