package api

import "strconv"

// LineCode builds the widget service line identifier, e.g. LineCode(4, "10") == "4__10___"
func LineCode(mode int, line string) string {
	return strconv.Itoa(mode) + "__" + line + "___"
}

// StopCode builds the widget service stop identifier, e.g. StopCode(8, "17491") == "8_17491"
func StopCode(mode int, stop string) string {
	return strconv.Itoa(mode) + "_" + stop
}
