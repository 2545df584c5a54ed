package catalog

// SI returns the built-in catalog: the SI base kinds plus the common
// derived kinds, with curated unit tables. Conversion factors are literal
// decimal approximations; round-trip precision is documented, not enforced.
// Density is canonicalized to kilograms per cubic meter, with kilograms per
// liter as a derived unit of it.
func SI() *Catalog {
	c := New("1")
	c.AddKinds(
		// base
		Kind("distance").
			Category("base").
			Description("distance (aka length)").
			Interop("Length").
			Canonical("meters", "m").
			Unit("centimeters", "cm", 0.01).
			Unit("millimeters", "mm", 0.001).
			Unit("kilometers", "km", 1000).
			Unit("astronomical units", "au", 149597870700).
			Spec(),
		Kind("mass").
			Category("base").
			Description("mass").
			Interop("Mass").
			Canonical("kilograms", "kg").
			Unit("grams", "g", 0.001).
			Unit("metric tons", "tons", 1000).
			Unit("earth masses", "earth_mass", 5.9722e24).
			Unit("solar masses", "solar_mass", 1.98855e30).
			Spec(),
		Kind("time").
			Category("base").
			Description("time duration").
			Interop("Time").
			Canonical("seconds", "s").
			Unit("milliseconds", "ms", 0.001).
			Unit("minutes", "min", 60).
			Unit("hours", "hr", 3600).
			Unit("days", "days", 86400).
			Spec(),
		Kind("temperature").
			Category("base").
			Description("temperature").
			Interop("Temperature").
			Canonical("degrees kelvin", "K").
			UnitAffine("degrees celsius", "C", 1, 273.15).
			UnitAffine("degrees fahrenheit", "F", 0.555555555555556, 255.3722222222222).
			Spec(),
		Kind("amount").
			Category("base").
			Description("amount of substance").
			Interop("Mole").
			Canonical("moles", "mol").
			Unit("millimoles", "mmol", 0.001).
			Unit("count of particles", "count", 1.66053906717385e-24).
			Spec(),
		Kind("current").
			Category("base").
			Description("electrical current").
			Interop("Current").
			Canonical("amperes", "A").
			Unit("milliamperes", "mA", 0.001).
			Unit("kiloamperes", "kA", 1000).
			Spec(),
		Kind("luminosity").
			Category("base").
			Description("luminous intensity").
			Interop("LuminousIntensity").
			Canonical("candela", "cd").
			Unit("millicandela", "mcd", 0.001).
			Unit("kilocandela", "kcd", 1000).
			Spec(),
		// geometry
		Kind("area").
			Category("geometry").
			Description("area").
			Canonical("square meters", "m2").
			DisplaySymbol("m²").
			Unit("square centimeters", "cm2", 0.0001).
			Unit("square kilometers", "km2", 1e6).
			Spec(),
		Kind("volume").
			Category("geometry").
			Description("volume").
			Canonical("cubic meters", "m3").
			DisplaySymbol("m³").
			Unit("liters", "L", 0.001).
			Unit("milliliters", "mL", 1e-06).
			Spec(),
		// mechanical
		Kind("velocity").
			Category("mechanical").
			Description("velocity").
			Canonical("meters per second", "mps").
			Unit("centimeters per second", "cmps", 0.01).
			Unit("kilometers per hour", "kph", 0.277777777777778).
			Spec(),
		Kind("acceleration").
			Category("mechanical").
			Description("acceleration").
			Canonical("meters per second squared", "mps2").
			Unit("millimeters per second squared", "mmps2", 0.001).
			Unit("standard gravity", "g", 9.80665).
			Spec(),
		Kind("force").
			Category("mechanical").
			Description("force").
			Canonical("newtons", "N").
			Unit("kilonewtons", "kN", 1000).
			Unit("kilograms force", "kgf", 9.80665).
			Spec(),
		Kind("pressure").
			Category("mechanical").
			Description("pressure").
			Canonical("pascals", "Pa").
			Unit("kilopascals", "kPa", 1000).
			Unit("bar", "bar", 100000).
			Unit("standard atmospheres", "atm", 101325).
			Spec(),
		Kind("energy").
			Category("mechanical").
			Description("energy").
			Canonical("joules", "J").
			Unit("kilojoules", "kJ", 1000).
			Unit("kilowatt hours", "kWh", 3600000).
			Unit("calories", "cal", 4.184).
			Spec(),
		Kind("power").
			Category("mechanical").
			Description("power (aka watts)").
			Canonical("watts", "W").
			Unit("kilowatts", "kW", 1000).
			Unit("horsepower", "hp", 745.69987158227).
			Spec(),
		Kind("frequency").
			Category("mechanical").
			Description("frequency").
			Canonical("hertz", "Hz").
			Unit("kilohertz", "kHz", 1000).
			Unit("megahertz", "MHz", 1e6).
			Unit("gigahertz", "GHz", 1e9).
			Spec(),
		Kind("momentum").
			Category("mechanical").
			Description("momentum").
			Canonical("kilogram meters per second", "kgmps").
			Unit("gram centimeters per second", "gcmps", 1e-05).
			Spec(),
		Kind("density").
			Category("mechanical").
			Description("density").
			Canonical("kilograms per cubic meter", "kgpm3").
			Unit("kilograms per liter", "kgpL", 1000).
			Spec(),
		// chemical
		Kind("concentration").
			Category("chemical").
			Description("chemical concentration").
			Canonical("moles per cubic meter", "molpm3").
			Unit("molar", "M", 1000).
			Unit("millimolar", "mM", 1).
			Spec(),
		// electromagnetic
		Kind("charge").
			Category("electromagnetic").
			Description("electrical charge").
			Canonical("coulombs", "C").
			Unit("millicoulombs", "mC", 0.001).
			Unit("ampere hours", "Ah", 3600).
			Spec(),
		Kind("voltage").
			Category("electromagnetic").
			Description("voltage (aka electrical potential)").
			Canonical("volts", "V").
			Unit("millivolts", "mV", 0.001).
			Unit("kilovolts", "kV", 1000).
			Spec(),
	)
	c.AddRelations(
		Mul("distance", "distance", "area"),
		Mul("area", "distance", "volume"),
		Div("distance", "time", "velocity"),
		Div("velocity", "time", "acceleration"),
		Mul("mass", "acceleration", "force"),
		Mul("force", "distance", "energy"),
		Div("energy", "time", "power"),
		Div("force", "area", "pressure"),
		Mul("mass", "velocity", "momentum"),
		Div("mass", "volume", "density"),
		Div("amount", "volume", "concentration"),
		Mul("current", "time", "charge"),
		Mul("voltage", "charge", "energy"),
		Mul("momentum", "velocity", "energy"),
		Reciprocal("time", "frequency"),
	)
	return c
}
