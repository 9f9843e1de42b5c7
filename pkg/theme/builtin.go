package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		Default(),
		thSolarizedTheme(),
		thMonoTheme(),
	} {
		Register(t)
	}
}

// Default returns the stock palette: grey path, Arch-blue current
// directory and clock, green/pink repository status.
func Default() Theme {
	return Theme{
		Name: "default",

		PathFg:      250, // light grey
		PathBg:      237, // dark grey
		SeparatorFg: 244,

		CwdFg: 254, // nearly-white grey
		CwdBg: 25,  // Arch blue

		TimeFg: 254,
		TimeBg: 25,

		ExtraFg:    252,
		ExtraBg:    238,
		ExtraSepFg: 244,

		RepoCleanFg: 0,
		RepoCleanBg: 148, // light green
		RepoDirtyFg: 15,
		RepoDirtyBg: 161, // pink/red

		CmdPassedFg: 15,
		CmdPassedBg: 236,
		CmdFailedFg: 15,
		CmdFailedBg: 161,

		SVNChangesFg: 22, // dark green
		SVNChangesBg: 148,

		VirtualEnvFg: 0,
		VirtualEnvBg: 35, // mid-tone green
	}
}

// thSolarizedTheme approximates the Solarized dark palette.
func thSolarizedTheme() Theme {
	return Theme{
		Name: "solarized",

		PathFg:      245,
		PathBg:      235,
		SeparatorFg: 240,

		CwdFg: 230,
		CwdBg: 33,

		TimeFg: 230,
		TimeBg: 61,

		ExtraFg:    230,
		ExtraBg:    136,
		ExtraSepFg: 235,

		RepoCleanFg: 235,
		RepoCleanBg: 64,
		RepoDirtyFg: 230,
		RepoDirtyBg: 160,

		CmdPassedFg: 230,
		CmdPassedBg: 235,
		CmdFailedFg: 230,
		CmdFailedBg: 160,

		SVNChangesFg: 235,
		SVNChangesBg: 37,

		VirtualEnvFg: 235,
		VirtualEnvBg: 166,
	}
}

// thMonoTheme uses greys only, for terminals with poor color support.
func thMonoTheme() Theme {
	return Theme{
		Name: "mono",

		PathFg:      250,
		PathBg:      238,
		SeparatorFg: 244,

		CwdFg: 255,
		CwdBg: 242,

		TimeFg: 255,
		TimeBg: 240,

		ExtraFg:    252,
		ExtraBg:    236,
		ExtraSepFg: 244,

		RepoCleanFg: 232,
		RepoCleanBg: 250,
		RepoDirtyFg: 255,
		RepoDirtyBg: 232,

		CmdPassedFg: 255,
		CmdPassedBg: 236,
		CmdFailedFg: 232,
		CmdFailedBg: 255,

		SVNChangesFg: 232,
		SVNChangesBg: 248,

		VirtualEnvFg: 232,
		VirtualEnvBg: 246,
	}
}
