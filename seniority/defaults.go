// SPDX-License-Identifier: MIT

package seniority

// defaultTables lists the titles observed in scraped FBS staff histories.
var defaultTables = map[Level][]string{
	HeadCoach: {
		"Head Coach",
	},
	Coordinator: {
		"Offensive Coordinator", "Special Teams Coordinator", "Co-Special Teams Coordinator",
		"Defensive Coordinator", "Associate Head Coach", "Recruiting Coordinator",
		"Co-Offensive Coordinator", "Co-Recruiting Coordinator", "Assistant Head Coach",
		"Co-Defensive Coordinator",
	},
	Assistant: {
		"Running Game Coordinator", "Passing Game Coordinator", "Offensive Assistant Coach",
		"Assistant Coach (Defense)", "Assistant Coach (Offense)", "Assistant Coach",
		"Defensive Assistant Coach", "Assistant Coach (Special Teams)", "Assistant Defensive Coordinator",
		"Assistant Special Teams Coordinator", "Assistant Recruiting Coordinator",
		"Assistant Offensive Coordinator", "Strength and Conditioning Coach",
		"Head Strength and Conditioning Coach",
	},
	Position: {
		"Defensive Ends Coach", "Offensive Line Coach", "Defensive Tackles Coach", "Running Backs Coach",
		"Outside Linebackers Coach", "Cornerbacks Coach", "Tight Ends Coach", "Wide Receivers Coach",
		"Safeties Coach", "Inside Linebackers Coach", "Defensive Line Coach", "Special Teams Coach",
		"Quarterbacks Coach", "Defensive Backs Coach", "Linebackers Coach", "Secondary Coach", "Nickels",
		"Offensive Tackles Coach", "Inside Receivers Coach", "Offensive Guards Coach",
		"Co-Quarterbacks Coach", "Co-Running Backs Coach",
	},
	Support: {
		"Director of Player Development", "Defensive Analyst", "Offensive Analyst",
		"Director of High School Relations", "Quality Control Coach", "Player Personnel Analyst",
		"Graduate Assistant", "Director of Player Personnel", "Assistant Strength and Conditioning Coach",
		"Assistant Passing Game Coordinator", "Director of Operations", "Video Coordinator",
	},
}

// Default returns the reference mapping. The tables are known to be
// conflict-free, so construction cannot fail.
func Default() *Mapping {
	m, err := NewMapping(defaultTables)
	if err != nil {
		panic(err)
	}

	return m
}
