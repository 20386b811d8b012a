// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package events

import (
	"github.com/lexerlux/lexers-world/internal/models"
)

// MockEvents returns the built-in fallback dataset. Served whenever the
// datastore is unconfigured or unavailable, so the globe is never empty.
func MockEvents() []models.Event {
	return []models.Event{
		{
			ID:             "evt-1",
			Name:           "Neon Nights Meetup",
			ManualLocation: "Bay Area, CA",
			Address:        "The Midway, 900 Marin St, San Francisco, CA 94124",
			Lat:            37.7849,
			Lng:            -122.4094,
			Description:    "Monthly gathering for creative technologists. Live coding, music, and neon aesthetics.",
			IsLexerComing:  models.AttendanceYes,
			Recurrent:      true,
			InviteURL:      "https://example.com/neon-nights",
			Date:           "2026-03-15T20:00:00Z",
			Cost:           0,
			Currency:       "USD",
		},
		{
			ID:                 "evt-2",
			Name:               "Synthwave Gallery Opening",
			ManualLocation:     "Bay Area, CA",
			Address:            "Gray Area, 2665 Mission St, San Francisco, CA 94110",
			Lat:                37.7694,
			Lng:                -122.4262,
			Description:        "Art exhibition featuring retro-futuristic digital art and synthwave music.",
			IsLexerComing:      models.AttendanceNo,
			Recurrent:          false,
			InviteURL:          "https://example.com/synthwave-gallery",
			Date:               "2026-03-22T18:00:00Z",
			Cost:               15,
			Currency:           "USD",
			HasAdditionalTiers: true,
		},
		{
			ID:             "evt-3",
			Name:           "London Hackers Social",
			ManualLocation: "London, UK",
			Address:        "The Barbican Centre, Silk St, London EC2Y 8DS, UK",
			Lat:            51.5174,
			Lng:            -0.1078,
			Description:    "Casual drinks and demos with London's indie hacker community.",
			IsLexerComing:  models.AttendanceYes,
			Recurrent:      true,
			InviteURL:      "https://example.com/london-hackers",
			Date:           "2026-03-10T19:00:00Z",
			Cost:           0,
			Currency:       "GBP",
		},
		{
			ID:             "evt-4",
			Name:           "Cyber Punk Rock Show",
			ManualLocation: "London, UK",
			Address:        "93 Feet East, 150 Brick Ln, London E1 6QL, UK",
			Lat:            51.5244,
			Lng:            -0.0782,
			Description:    "Live music at the intersection of punk and cyberpunk. Bring earplugs.",
			IsLexerComing:  models.AttendanceNo,
			Recurrent:      false,
			InviteURL:      "https://example.com/punk-rock",
			Date:           "2026-04-05T21:00:00Z",
			Cost:           20,
			Currency:       "GBP",
		},
		{
			ID:                 "evt-5",
			Name:               "NYC Creative Coders",
			ManualLocation:     "New York, NY",
			Address:            "ITP/NYU, 370 Jay St, Brooklyn, NY 11201",
			Lat:                40.7228,
			Lng:                -73.996,
			Description:        "Workshop on creative coding with Three.js, shaders, and generative art.",
			IsLexerComing:      models.AttendanceYes,
			Recurrent:          true,
			InviteURL:          "https://example.com/nyc-coders",
			Date:               "2026-03-20T18:30:00Z",
			Cost:               10,
			Currency:           "USD",
			HasAdditionalTiers: true,
		},
		{
			ID:             "evt-6",
			Name:           "Retro Arcade Night",
			ManualLocation: "New York, NY",
			Address:        "Barcade, 148 W 24th St, New York, NY 10011",
			Lat:            40.7508,
			Lng:            -73.9875,
			Description:    "Classic arcade games, pixel art, and chiptune music.",
			IsLexerComing:  models.AttendanceYes,
			Recurrent:      false,
			InviteURL:      "https://example.com/arcade-night",
			Date:           "2026-04-12T20:00:00Z",
			Cost:           5,
			Currency:       "USD",
		},
		{
			ID:                 "evt-7",
			Name:               "Toronto Indie Devs",
			ManualLocation:     "Toronto, ON",
			Address:            "Gamma Space, 298 Brunswick Ave, Toronto, ON M5S 2M7",
			Lat:                43.6472,
			Lng:                -79.3932,
			Description:        "Showcase night for indie game devs and creative software projects.",
			IsLexerComing:      models.AttendanceNo,
			Recurrent:          true,
			InviteURL:          "https://example.com/toronto-indie",
			Date:               "2026-03-18T19:00:00Z",
			Cost:               0,
			Currency:           "CAD",
			HasAdditionalTiers: true,
		},
		{
			ID:                 "evt-8",
			Name:               "Montréal Digital Arts Jam",
			ManualLocation:     "Montréal, QC",
			Address:            "Eastern Bloc, 7240 Rue Clark, Montréal, QC H2R 1W4",
			Lat:                45.5087,
			Lng:                -73.5543,
			Description:        "48-hour jam creating interactive digital art installations. All skill levels.",
			IsLexerComing:      models.AttendanceYes,
			Recurrent:          false,
			InviteURL:          "https://example.com/mtl-jam",
			Date:               "2026-04-01T10:00:00Z",
			Cost:               25,
			Currency:           "CAD",
			HasAdditionalTiers: true,
		},
		{
			ID:             "evt-9",
			Name:           "Montréal Glitch Art Workshop",
			ManualLocation: "Montréal, QC",
			Address:        "Perte de Signal, 243 Rue du Parc Industriel, Montréal, QC H8R 1J1",
			Lat:            45.4957,
			Lng:            -73.5773,
			Description:    "Learn glitch art techniques: databending, pixel sorting, and circuit bending.",
			IsLexerComing:  models.AttendanceNo,
			Recurrent:      true,
			InviteURL:      "https://example.com/mtl-glitch",
			Date:           "2026-03-25T14:00:00Z",
			Cost:           0,
			Currency:       "CAD",
		},
	}
}
