package testutil

// Snapshots of widget service responses for API testing

// SampleModesResponse is the transport mode list
const SampleModesResponse = `{
	"modes": {
		"Mode": [
			{"codMode": "4", "name": "METRO"},
			{"codMode": "5", "name": "CERCANÍAS"}
		]
	}
}`

// SampleModesCollisionResponse lists two modes that normalize to the same identifier
const SampleModesCollisionResponse = `{
	"modes": {
		"Mode": [
			{"codMode": "6", "name": "AUTOBUSES URBANOS"},
			{"codMode": "8", "name": "AUTOBUSES INTERURBANOS"},
			{"codMode": "9", "name": "Autobuses, urbanos"}
		]
	}
}`

// SampleMunicipalitiesResponse is the municipality list
const SampleMunicipalitiesResponse = `{
	"municipalities": {
		"Municipality": [
			{"codMunicipality": "4279", "name": "MADRID"},
			{"codMunicipality": "4058", "name": "FUENLABRADA"},
			{"codMunicipality": "4004", "name": "ÁLAMO, EL"}
		]
	}
}`

// SampleLinesResponse is a GetLines.php response with two lines
const SampleLinesResponse = `{
	"lines": {
		"Line": [
			{
				"codLine": "4__1___",
				"shortDescription": "1",
				"description": "PINAR DE CHAMARTIN - VALDECARROS",
				"codMode": "4",
				"nightService": 0,
				"active": true,
				"colorLine": "30A3DC",
				"text_colorLine": "FFFFFF"
			},
			{
				"codLine": "4__10___",
				"shortDescription": "10",
				"description": "HOSPITAL INFANTA SOFIA - PUERTA DEL SUR",
				"codMode": "4",
				"nightService": 0,
				"active": true
			}
		]
	}
}`

// SampleLineInfoResponse is a GetLinesInformation.php response for a single line
const SampleLineInfoResponse = `{
	"lines": {
		"LineInformation": {
			"codLine": "8__460___",
			"shortDescription": "460",
			"description": "MADRID (Aluche) - FUENLABRADA",
			"codMode": "8",
			"codMunicipalities": {"string": ["4279", "4058"]},
			"itinerary": {
				"Itinerary": [
					{"codItinerary": "8__460____1__IT_1", "name": "MADRID (Aluche) - FUENLABRADA", "direction": 1},
					{"codItinerary": "8__460____2__IT_1", "name": "FUENLABRADA - MADRID (Aluche)", "direction": 2}
				]
			},
			"lineTimePlanning": {"startService": "06:00", "endService": "23:30"}
		}
	}
}`

// SampleStopsResponse is a GetStops.php response with a single stop
const SampleStopsResponse = `{
	"stops": {
		"Stop": {
			"codStop": "8_17491",
			"shortCodStop": "17491",
			"codMode": "8",
			"name": "AV.CONSTITUCION-CONSUMO",
			"address": "AV.CONSTITUCION, 63",
			"postCode": "28943",
			"codMunicipality": "4058",
			"coordinates": {"latitude": 40.283955, "longitude": -3.79531},
			"codLines": {"Line": ["8__460___", "8__462___"]}
		}
	}
}`

// SampleStopTimesResponse is a GetStopsTimes.php response
const SampleStopTimesResponse = `{
	"stopTimes": {
		"actualDate": "2025-01-15T10:00:00+01:00",
		"stop": {"codStop": "8_17491", "shortCodStop": "17491", "name": "AV.CONSTITUCION-CONSUMO"},
		"times": {
			"Time": [
				{
					"line": {"codLine": "8__460___", "shortDescription": "460", "codMode": "8"},
					"direction": 1,
					"destination": "MADRID (Aluche)",
					"time": "2025-01-15T10:04:00+01:00"
				},
				{
					"line": {"codLine": "8__462___", "shortDescription": "462", "codMode": "8"},
					"direction": 2,
					"destination": "FUENLABRADA",
					"time": "2025-01-15T10:12:00+01:00"
				}
			]
		},
		"linesStatus": {"LineStatus": [{"line": {"codLine": "8__460___"}, "SAEStatus": true}]}
	}
}`

// SampleOfficesResponse is a GetOffices.php response
const SampleOfficesResponse = `{
	"offices": {
		"Office": [
			{
				"codOffice": "1",
				"name": "OFICINA DE ATENCIÓN AL CLIENTE SOL",
				"address": "PUERTA DEL SOL, S/N",
				"openTime": "L-V 8:00-20:00",
				"coordinates": {"latitude": 40.4169, "longitude": -3.7035},
				"type": "OFICINA"
			}
		]
	}
}`

// SampleEmptyResponse is a valid JSON document with no data
const SampleEmptyResponse = `{}`

// SampleCardEnvelope is a ConsultaSaldo1 SOAP response
const SampleCardEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
	<s:Body>
		<ConsultaSaldo1Response xmlns="http://tempuri.org/">
			<ConsultaSaldo1Result xmlns:a="http://schemas.datacontract.org/2004/07/VentaPrepagoTitulo" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
				<a:iCallLogField>0</a:iCallLogField>
				<a:sResulXMLField>&lt;Respuesta&gt;&lt;Tarjeta numero="0010000000"&gt;&lt;Perfil&gt;JOVEN&lt;/Perfil&gt;&lt;Titulo codigo="A"&gt;&lt;Caducidad&gt;2025-02-14&lt;/Caducidad&gt;&lt;/Titulo&gt;&lt;/Tarjeta&gt;&lt;/Respuesta&gt;</a:sResulXMLField>
			</ConsultaSaldo1Result>
		</ConsultaSaldo1Response>
	</s:Body>
</s:Envelope>`

// SampleCardFault is a SOAP fault returned for an unknown card
const SampleCardFault = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
	<s:Body>
		<s:Fault>
			<faultcode>s:Client</faultcode>
			<faultstring>Tarjeta no encontrada</faultstring>
		</s:Fault>
	</s:Body>
</s:Envelope>`
