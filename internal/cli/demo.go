package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/units/pkg/spatial"
	"github.com/mesh-intelligence/units/pkg/units"
)

// demoRow is one evaluated scenario.
type demoRow struct {
	Scenario   string `json:"scenario" yaml:"scenario"`
	Expression string `json:"expression" yaml:"expression"`
	Result     string `json:"result" yaml:"result"`
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Evaluate the canonical unit scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := a.demo()
			a.log.Debug("demo", "scenarios", len(rows))
			return a.render(cmd.OutOrStdout(), rows, func(w io.Writer) error {
				lines := make([]string, len(rows))
				for i, r := range rows {
					lines[i] = fmt.Sprintf("%s\t%s\t%s", r.Scenario, r.Expression, r.Result)
				}
				return table(w, "SCENARIO\tEXPRESSION\tRESULT", lines)
			})
		},
	}
}

func (a *app) demo() []demoRow {
	deg := func(x units.Angle) string { return a.number(units.ToDegrees(x)) + " deg" }

	area := units.Mul[units.AreaTag](units.Inches(2), units.Inches(2))
	trip := units.Miles(3).Add(units.Feet(100))
	torque := units.Product(units.Newtons(2), units.Meters(3))
	spin := units.ToAngular[units.AngleTag](units.Centimeters(10), units.Centimeters(2))
	rim := units.ToLinear[units.LinearVelocityTag](units.RotationsPerMinute(60), units.Centimeters(5))

	pose := spatial.NewPoseXY(units.MetersPerSecondSquared(1), units.MetersPerSecondSquared(2), units.RotationsPerMinuteSquared(0))
	pose = pose.Turn(units.RotationsPerMinuteSquared(2))

	return []demoRow{
		{"compass bearing", "CompassDegrees(15).Angle()", deg(units.CompassDegrees(15).Angle())},
		{"negative bearing", "CompassDegrees(-15).Angle()", deg(units.CompassDegrees(-15).Angle())},
		{"bearing of angle", "ToCompassDegrees(Degrees(30))", a.number(units.ToCompassDegrees(units.Degrees(30))) + " cdeg"},
		{"freezing point", "DegreesCelsius(0)", a.quantity(units.DegreesCelsius(0))},
		{"body temperature", "ToDegreesCelsius(DegreesFahrenheit(98.6))", a.number(units.ToDegreesCelsius(units.DegreesFahrenheit(98.6))) + " degC"},
		{"warmer of", "Max(DegreesCelsius(10), Kelvins(1))", a.quantity(units.Max(units.DegreesCelsius(10), units.Kelvins(1)))},
		{"tile area", "Mul[AreaTag](Inches(2), Inches(2))", a.number(units.ToSquareCentimeters(area)) + " cm2"},
		{"trip length", "Miles(3).Add(Feet(100))", a.number(units.ToKilometers(trip)) + " km"},
		{"wrap angle", "ConstrainAngle180(Degrees(200))", deg(units.ConstrainAngle180(units.Degrees(200)))},
		{"full turn", "ConstrainAngle360(Degrees(-90))", deg(units.ConstrainAngle360(units.Degrees(-90)))},
		{"clamp", "Clamp(Meters(12), Meters(0), Meters(10))", a.quantity(units.Clamp(units.Meters(12), units.Meters(0), units.Meters(10)))},
		{"quantize", "Round(Meters(1.26), Centimeters(5))", a.number(units.ToCentimeters(units.Round(units.Meters(1.26), units.Centimeters(5)))) + " cm"},
		{"side of square", "Sqrt[LengthTag](SquareMeters(16))", a.quantity(units.Sqrt[units.LengthTag](units.SquareMeters(16)))},
		{"named product", "Product(Newtons(2), Meters(3))", a.quantity(torque) + " (" + torque.Name() + ")"},
		{"anonymous product", "Product(Meters(2), SquareMeters(3))", a.quantity(units.Product(units.Meters(2), units.SquareMeters(3)))},
		{"arc to angle", "ToAngular[AngleTag](Centimeters(10), Centimeters(2))", a.quantity(spin)},
		{"rim speed", "ToLinear[LinearVelocityTag](RotationsPerMinute(60), Centimeters(5))", a.quantity(rim)},
		{"acceleration pose", "NewPoseXY(1 mps2, 2 mps2, 0 rpm2).Turn(2 rpm2)", pose.String()},
	}
}
