package tools

// Catalog returns the fixed set of F1 data tools, in the order they
// are listed to hosts.
func Catalog() []Definition {
	return []Definition{
		{
			Name: "get_sessions",
			Description: "Retrieve F1 race sessions. Can filter by year, country, circuit, session type, etc. " +
				"Returns session details including session_key, date, location, and type.",
			Endpoint: "sessions",
			Noun:     "session",
			Arguments: []Argument{
				{Name: "year", Type: ArgInteger, Description: "Filter by year (e.g., 2023, 2024)"},
				{Name: "country_name", Type: ArgString, Description: "Filter by country name (e.g., 'Monaco', 'Italy')"},
				{Name: "circuit_short_name", Type: ArgString, Description: "Filter by circuit short name (e.g., 'Monza', 'Monaco')"},
				{Name: "session_name", Type: ArgString, Description: "Filter by session name (e.g., 'Race', 'Qualifying', 'Sprint')"},
				{Name: "session_key", Type: ArgInteger, Description: "Get specific session by session_key", Summary: "session %s"},
				{Name: "date_start", Type: ArgString, Description: "Filter by start date (ISO format: YYYY-MM-DD)"},
			},
			Fields: []Field{
				{Label: "Session Key", Key: "session_key"},
				{Label: "Name", Key: "session_name"},
				{Label: "Type", Key: "session_type"},
				{Label: "Date", Key: "date_start"},
				{Label: "Location", Key: "location"},
				{Label: "Country", Key: "country_name"},
				{Label: "Circuit", Key: "circuit_short_name"},
				{Label: "Year", Key: "year"},
				{Label: "Meeting Key", Key: "meeting_key"},
			},
		},
		{
			Name: "get_drivers",
			Description: "Retrieve driver information. Can get all drivers or filter by session_key. " +
				"Returns driver details including name, number, team, country, and headshot URL.",
			Endpoint: "drivers",
			Noun:     "driver",
			Arguments: []Argument{
				{Name: "session_key", Type: ArgInteger, Description: "Filter drivers by session_key to get drivers from a specific session", Summary: "session %s"},
				{Name: "driver_number", Type: ArgInteger, Description: "Filter by driver number (e.g., 1, 44, 16)", Summary: "driver #%s"},
				{Name: "team_name", Type: ArgString, Description: "Filter by team name (e.g., 'Red Bull Racing', 'Ferrari')"},
			},
			Fields: []Field{
				{Label: "Driver Number", Key: "driver_number"},
				{Label: "Name", Key: "full_name"},
				{Label: "Abbreviation", Key: "name_acronym"},
				{Label: "Team", Key: "team_name"},
				{Label: "Country", Key: "country_code"},
				{Label: "Headshot", Key: "headshot_url"},
				{Label: "Session Key", Key: "session_key"},
			},
		},
		{
			Name: "get_laps",
			Description: "Retrieve lap timing data for a session. Returns lap duration, sector times, " +
				"speed trap readings, and whether the lap was a pit-out lap.",
			Endpoint: "laps",
			Noun:     "lap",
			Arguments: []Argument{
				{Name: "session_key", Type: ArgInteger, Description: "Filter laps by session_key", Summary: "session %s"},
				{Name: "driver_number", Type: ArgInteger, Description: "Filter by driver number (e.g., 1, 44, 16)", Summary: "driver #%s"},
				{Name: "lap_number", Type: ArgInteger, Description: "Get a specific lap by its number"},
			},
			Fields: []Field{
				{Label: "Driver Number", Key: "driver_number"},
				{Label: "Lap Number", Key: "lap_number"},
				{Label: "Lap Duration", Key: "lap_duration"},
				{Label: "Sector 1", Key: "duration_sector_1"},
				{Label: "Sector 2", Key: "duration_sector_2"},
				{Label: "Sector 3", Key: "duration_sector_3"},
				{Label: "I1 Speed", Key: "i1_speed"},
				{Label: "I2 Speed", Key: "i2_speed"},
				{Label: "ST Speed", Key: "st_speed"},
				{Label: "Pit Out Lap", Key: "is_pit_out_lap"},
			},
		},
		{
			Name: "get_pit_stops",
			Description: "Retrieve pit stop data. pit_duration filters to stops at or below the given " +
				"number of seconds.",
			Endpoint: "pit",
			Noun:     "pit stop",
			Arguments: []Argument{
				{Name: "session_key", Type: ArgInteger, Description: "Filter pit stops by session_key", Summary: "session %s"},
				{Name: "driver_number", Type: ArgInteger, Description: "Filter by driver number (e.g., 1, 44, 16)", Summary: "driver #%s"},
				{Name: "pit_duration", Type: ArgNumber, Description: "Only pit stops taking at most this many seconds", UpperBound: true},
			},
			Fields: []Field{
				{Label: "Driver Number", Key: "driver_number"},
				{Label: "Lap Number", Key: "lap_number"},
				{Label: "Pit Duration", Key: "pit_duration"},
				{Label: "Date", Key: "date"},
				{Label: "Session Key", Key: "session_key"},
			},
		},
		{
			Name: "get_overtakes",
			Description: "Retrieve overtakes within a session, including which driver passed which and " +
				"the resulting position.",
			Endpoint: "overtakes",
			Noun:     "overtake",
			Arguments: []Argument{
				{Name: "session_key", Type: ArgInteger, Description: "Filter overtakes by session_key", Summary: "session %s"},
				{Name: "overtaking_driver_number", Type: ArgInteger, Description: "Filter by the overtaking driver's number", Summary: "overtaking driver #%s"},
				{Name: "overtaken_driver_number", Type: ArgInteger, Description: "Filter by the overtaken driver's number", Summary: "overtaken driver #%s"},
			},
			Fields: []Field{
				{Label: "Overtaking Driver", Key: "overtaking_driver_number"},
				{Label: "Overtaken Driver", Key: "overtaken_driver_number"},
				{Label: "Position", Key: "position"},
				{Label: "Date", Key: "date"},
				{Label: "Session Key", Key: "session_key"},
			},
		},
	}
}
