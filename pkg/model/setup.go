package model

import "time"

// CurrentSetupSchemaVersion is the schema version written for new setups.
// Version 1 records carry the flat legacy fields on SetupData; the setup
// normalizer maps those into the canonical slots.
const CurrentSetupSchemaVersion = 2

type Setup struct {
	ID            string    `json:"id"`
	CarID         string    `json:"carId"`
	TrackID       string    `json:"trackId"`
	VersionLabel  string    `json:"versionLabel"`
	SchemaVersion int       `json:"setupSchemaVersion"`
	Data          SetupData `json:"setupData"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SetupData groups the tuning attributes of a car into six subsystems.
// All leaves are free text ("35wt", "-2°", "4.4"); numeric interpretation is
// left to the reader.
type SetupData struct {
	Chassis     ChassisSetup     `json:"chassis"`
	Suspension  SuspensionSetup  `json:"suspension"`
	Drivetrain  DrivetrainSetup  `json:"drivetrain"`
	Tires       TireSetup        `json:"tires"`
	Electronics ElectronicsSetup `json:"electronics"`
	General     GeneralSetup     `json:"general"`

	// flat fields written by schema version 1; superseded by the canonical
	// slots above
	RideHeight string `json:"rideHeight,omitempty"`
	Springs    string `json:"springs,omitempty"`
	ShockOil   string `json:"shockOil,omitempty"`
}

type ChassisSetup struct {
	RideHeightF string `json:"rideHeightF"`
	RideHeightR string `json:"rideHeightR"`
	CamberF     string `json:"camberF"`
	CamberR     string `json:"camberR"`
	ToeF        string `json:"toeF"`
	ToeR        string `json:"toeR"`
	Caster      string `json:"caster"`
	DroopF      string `json:"droopF"`
	DroopR      string `json:"droopR"`
	AntiSquat   string `json:"antiSquat"`
}

type SuspensionSetup struct {
	SpringsF       string `json:"springsF"`
	SpringsR       string `json:"springsR"`
	ShockOilF      string `json:"shockOilF"`
	ShockOilR      string `json:"shockOilR"`
	PistonsF       string `json:"pistonsF"`
	PistonsR       string `json:"pistonsR"`
	ShockPositionF string `json:"shockPositionF"`
	ShockPositionR string `json:"shockPositionR"`
	SwayBarF       string `json:"swayBarF"`
	SwayBarR       string `json:"swayBarR"`
}

type DrivetrainSetup struct {
	Pinion     string `json:"pinion"`
	Spur       string `json:"spur"`
	FDR        string `json:"fdr"`
	DiffOilF   string `json:"diffOilF"`
	DiffOilC   string `json:"diffOilC"`
	DiffOilR   string `json:"diffOilR"`
	SlipperSet string `json:"slipperSet"`
}

type TireSetup struct {
	TireF     string `json:"tireF"`
	TireR     string `json:"tireR"`
	CompoundF string `json:"compoundF"`
	CompoundR string `json:"compoundR"`
	InsertF   string `json:"insertF"`
	InsertR   string `json:"insertR"`
	WheelF    string `json:"wheelF"`
	WheelR    string `json:"wheelR"`
	Additive  string `json:"additive"`
}

type ElectronicsSetup struct {
	Motor       string `json:"motor"`
	MotorTiming string `json:"motorTiming"`
	ESC         string `json:"esc"`
	ESCProfile  string `json:"escProfile"`
	Battery     string `json:"battery"`
	Servo       string `json:"servo"`
}

type GeneralSetup struct {
	Body          string `json:"body"`
	Wing          string `json:"wing"`
	Weight        string `json:"weight"`
	WeightBalance string `json:"weightBalance"`
	Notes         string `json:"notes"`
}
