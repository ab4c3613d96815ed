package api

const (
	// BaseURL is the base URL of the CRTM widget service
	BaseURL = "https://www.crtm.es/widgets/api"

	// EndpointLines lists lines by mode, municipality or line code
	// Params: mode | codMunicipality (+mode) | codLine
	EndpointLines = "GetLines.php"

	// EndpointLinesInformation returns itineraries and municipalities of a line
	// Required params: codLine, activeItinerary
	EndpointLinesInformation = "GetLinesInformation.php"

	// EndpointLinesTimePlanning returns the service window of a line
	// Required params: codLine, activeItinerary
	EndpointLinesTimePlanning = "GetLinesTimePlanning.php"

	// EndpointLineLocation returns vehicle positions for a line
	// Required params: mode, codItinerary, codLine, codStop, direction
	EndpointLineLocation = "GetLineLocation.php"

	// EndpointIncidents returns incidents affecting a line
	// Required params: mode, codLine
	EndpointIncidents = "GetIncidentsAffectations.php"

	// EndpointOffices lists offices and sales points
	// Params: type | postcode (+type) | codmunicipality (+type)
	EndpointOffices = "GetOffices.php"

	// EndpointMunicipalities lists all municipalities
	EndpointMunicipalities = "GetMunicipalities.php"

	// EndpointModes lists all transport modes
	EndpointModes = "GetModes.php"

	// EndpointStops lists stops
	// Params: codStop | customSearch | postcode | codMunicipality
	EndpointStops = "GetStops.php"

	// EndpointStopsTimes returns upcoming passages at a stop
	// Required params: codStop, type, orderBy, stopTimesByIti
	EndpointStopsTimes = "GetStopsTimes.php"

	// EndpointNearestStops returns stops around a coordinate
	// Required params: latitude, longitude, method, precision. Optional: mode
	EndpointNearestStops = "GetNearestStopsByLocation.php"
)

const (
	// DefaultOrderBy is the stop times ordering used when none is given
	DefaultOrderBy = 2

	// DefaultNearestMethod is the nearest stops search method used when none is given
	DefaultNearestMethod = 2

	// DefaultPrecision is the nearest stops radius in meters used by the CLI
	DefaultPrecision = 250

	// DefaultStopType is the passage type used by the CLI and TUI when a stop
	// does not report one
	DefaultStopType = 1

	// DefaultTimesByItinerary is the stopTimesByIti value used by the CLI and TUI
	DefaultTimesByItinerary = "3"
)
