package columns

// Kind classifies how a canonical field is coerced and defaulted.
type Kind int

const (
	// KindString fields never fail; a missing value takes the default text.
	KindString Kind = iota
	// KindNumber fields fall back to their default when missing or unparseable.
	KindNumber
	// KindAdvanced fields default to a neutral value when missing, but become
	// NaN when present and unparseable.
	KindAdvanced
)

// Canonical field names
const (
	Name         = "name"
	Position     = "position"
	Height       = "height"
	PreviousTeam = "previousTeam"
	Conference   = "conference"
	Archetype    = "archetype"
	Summary      = "summary"
	Committed    = "committed"

	OffensiveRating   = "offensiveRating"
	DefensiveRating   = "defensiveRating"
	UsageRate         = "usageRate"
	EFGPercent        = "efgPercent"
	ThreePtPercent    = "threePtPercent"
	FTPercent         = "ftPercent"
	ReboundingPercent = "reboundingPercent"
	BlockPercent      = "blockPercent"
	StealPercent      = "stealPercent"
	PPG               = "ppg"
	RPG               = "rpg"
	APG               = "apg"
	Minutes           = "minutes"
	FitScore          = "fitScore"

	TrueShootingPercent        = "trueShootingPercent"
	AssistPercent              = "assistPercent"
	TurnoverPercent            = "turnoverPercent"
	OffensiveReboundingPercent = "offensiveReboundingPercent"
	DefensiveReboundingPercent = "defensiveReboundingPercent"
	BoxPlusMinus               = "boxPlusMinus"
	OffensiveBoxPlusMinus      = "offensiveBoxPlusMinus"
	DefensiveBoxPlusMinus      = "defensiveBoxPlusMinus"
	ProductionRating           = "productionRating"
)

// Field declares one canonical field: its header aliases in priority order
// and the value substituted when resolution fails.
type Field struct {
	Name          string
	Kind          Kind
	Aliases       []string
	DefaultText   string
	DefaultNumber float64
}

// Fields is the alias table. Order matters only for readability; each
// field's Aliases are tried first to last.
var Fields = []Field{
	{Name: Name, Kind: KindString, Aliases: []string{"Name", "name", "Player", "player"}},
	{Name: Position, Kind: KindString, Aliases: []string{"Position", "position", "Pos"}, DefaultText: "G"},
	{Name: Height, Kind: KindString, Aliases: []string{"Height", "height", "Ht"}, DefaultText: `6'0"`},
	{Name: PreviousTeam, Kind: KindString, Aliases: []string{"Previous Team", "previousTeam", "Previous_Team", "Team", "team"}, DefaultText: "Unknown"},
	{Name: Conference, Kind: KindString, Aliases: []string{"Conference", "conference", "Conf", "conf"}, DefaultText: "Unknown"},
	{Name: Archetype, Kind: KindString, Aliases: []string{"Archetype", "archetype", "Role", "role"}, DefaultText: "Balanced Player"},
	{Name: Summary, Kind: KindString, Aliases: []string{"Summary", "summary"}, DefaultText: "No summary available"},
	{Name: Committed, Kind: KindString, Aliases: []string{"Committed", "committed"}, DefaultText: "No"},

	{Name: OffensiveRating, Kind: KindNumber, Aliases: []string{"Offensive Rating", "offensiveRating", "Offensive_Rating", "ortg"}, DefaultNumber: 100},
	{Name: DefensiveRating, Kind: KindNumber, Aliases: []string{"Defensive Rating", "defensiveRating", "Defensive_Rating", "drtg"}, DefaultNumber: 100},
	{Name: UsageRate, Kind: KindNumber, Aliases: []string{"Usage Rate", "usageRate", "Usage_Rate", "usg"}, DefaultNumber: 20},
	{Name: EFGPercent, Kind: KindNumber, Aliases: []string{"eFG%", "efgPercent", "eFG_Percent", "efg"}, DefaultNumber: 50},
	{Name: ThreePtPercent, Kind: KindNumber, Aliases: []string{"3P%", "3PT%", "threePtPercent", "3PT_Percent"}, DefaultNumber: 35},
	{Name: FTPercent, Kind: KindNumber, Aliases: []string{"FT%", "ftPercent", "FT_Percent"}, DefaultNumber: 75},
	// Missing rebounding % is derived from the offensive/defensive split in Resolve.
	{Name: ReboundingPercent, Kind: KindNumber, Aliases: []string{"Rebounding %", "reboundingPercent", "Rebounding_Percent"}},
	{Name: BlockPercent, Kind: KindNumber, Aliases: []string{"Block %", "blockPercent", "Block_Percent", "blk_pct"}, DefaultNumber: 2},
	{Name: StealPercent, Kind: KindNumber, Aliases: []string{"Steal %", "stealPercent", "Steal_Percent", "stl_pct"}, DefaultNumber: 2},
	{Name: PPG, Kind: KindNumber, Aliases: []string{"PPG", "ppg", "Points Per Game", "pts"}, DefaultNumber: 12},
	{Name: RPG, Kind: KindNumber, Aliases: []string{"RPG", "rpg", "Rebounds Per Game", "reb"}, DefaultNumber: 5},
	{Name: APG, Kind: KindNumber, Aliases: []string{"APG", "apg", "Assists Per Game", "ast"}, DefaultNumber: 3},
	{Name: Minutes, Kind: KindNumber, Aliases: []string{"Minutes", "minutes", "Minutes Per Game", "mpg"}, DefaultNumber: 25},
	{Name: FitScore, Kind: KindNumber, Aliases: []string{"Fit Score", "fitScore", "Fit_Score"}, DefaultNumber: 50},

	// Advanced defaults sit at the midpoint of the scoring bounds so a
	// missing metric contributes a neutral 0.5.
	{Name: TrueShootingPercent, Kind: KindAdvanced, Aliases: []string{"TS%", "trueShootingPercent", "ts_pct"}, DefaultNumber: 52.5},
	{Name: AssistPercent, Kind: KindAdvanced, Aliases: []string{"Ast %", "assistPercent", "ast_pct"}, DefaultNumber: 17.5},
	{Name: TurnoverPercent, Kind: KindAdvanced, Aliases: []string{"TO %", "turnoverPercent", "tov_pct", "to_pct"}, DefaultNumber: 17.5},
	{Name: OffensiveReboundingPercent, Kind: KindAdvanced, Aliases: []string{"Offensive Rebounding %", "offensiveReboundingPercent", "oreb_pct"}, DefaultNumber: 6.5},
	{Name: DefensiveReboundingPercent, Kind: KindAdvanced, Aliases: []string{"Defensive Rebounding %", "defensiveReboundingPercent", "dreb_pct"}, DefaultNumber: 16.5},
	{Name: BoxPlusMinus, Kind: KindAdvanced, Aliases: []string{"BPM", "boxPlusMinus", "bpm"}, DefaultNumber: 2.5},
	{Name: OffensiveBoxPlusMinus, Kind: KindAdvanced, Aliases: []string{"OBPM", "offensiveBoxPlusMinus", "obpm"}, DefaultNumber: 1.5},
	{Name: DefensiveBoxPlusMinus, Kind: KindAdvanced, Aliases: []string{"DBPM", "defensiveBoxPlusMinus", "dbpm"}, DefaultNumber: 1},
	{Name: ProductionRating, Kind: KindAdvanced, Aliases: []string{"PRPG", "productionRating", "prpg", "porpag"}, DefaultNumber: 3},
}

// FieldByName returns the alias table entry for a canonical field.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
