package statsapi

import (
	"fmt"
	"strconv"
	"strings"

	"mlb-statsapi-mcp/internal/domain"
)

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Name:         t.Name,
		TeamCode:     t.TeamCode,
		FileCode:     t.FileCode,
		TeamName:     t.TeamName,
		LocationName: t.LocationName,
		ShortName:    t.ShortName,
		Abbreviation: t.Abbreviation,
	}
}

// filterTeams keeps the teams whose fields contain the lookup value,
// case-insensitively. An empty lookup matches every team.
func filterTeams(teams []teamResponse, lookup string) []domain.Team {
	needle := strings.ToLower(strings.TrimSpace(lookup))
	matched := make([]domain.Team, 0)
	for _, t := range teams {
		team := mapTeam(t)
		if needle == "" || teamMatches(team, needle) {
			matched = append(matched, team)
		}
	}
	return matched
}

func teamMatches(t domain.Team, needle string) bool {
	fields := []string{
		strconv.Itoa(t.ID),
		t.Name,
		t.TeamCode,
		t.FileCode,
		t.TeamName,
		t.LocationName,
		t.ShortName,
		t.Abbreviation,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// mapSchedule flattens the nested dates/games payload into one list,
// preserving provider order.
func mapSchedule(resp scheduleResponse) []domain.Game {
	games := make([]domain.Game, 0)
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			games = append(games, mapGame(d.Date, g))
		}
	}
	return games
}

func mapGame(date string, g gameResponse) domain.Game {
	if date == "" {
		date = g.OfficialDate
	}
	out := domain.Game{
		GameID:       g.GamePk,
		GameDate:     date,
		GameDateTime: g.GameDate,
		GameType:     g.GameType,
		Status:       g.Status.DetailedState,
		DoubleHeader: g.DoubleHeader,
		GameNum:      g.GameNumber,
		AwayID:       g.Teams.Away.Team.ID,
		AwayName:     g.Teams.Away.Team.Name,
		AwayScore:    derefInt(g.Teams.Away.Score),
		HomeID:       g.Teams.Home.Team.ID,
		HomeName:     g.Teams.Home.Team.Name,
		HomeScore:    derefInt(g.Teams.Home.Score),
		VenueID:      g.Venue.ID,
		VenueName:    g.Venue.Name,
	}
	if p := g.Teams.Away.ProbablePitcher; p != nil {
		out.AwayProbablePitcher = p.FullName
	}
	if p := g.Teams.Home.ProbablePitcher; p != nil {
		out.HomeProbablePitcher = p.FullName
	}
	if ls := g.Linescore; ls != nil {
		out.CurrentInning = ls.CurrentInning
		out.InningState = ls.InningState
	}
	switch {
	case derefBool(g.Teams.Home.IsWinner):
		out.WinningTeam = out.HomeName
		out.LosingTeam = out.AwayName
	case derefBool(g.Teams.Away.IsWinner):
		out.WinningTeam = out.AwayName
		out.LosingTeam = out.HomeName
	}
	if d := g.Decisions; d != nil {
		if d.Winner != nil {
			out.WinningPitcher = d.Winner.FullName
		}
		if d.Loser != nil {
			out.LosingPitcher = d.Loser.FullName
		}
		if d.Save != nil {
			out.SavePitcher = d.Save.FullName
		}
	}
	out.Summary = fmt.Sprintf("%s - %s (%d) @ %s (%d) (%s)",
		out.GameDate, out.AwayName, out.AwayScore, out.HomeName, out.HomeScore, out.Status)
	return out
}

func mapScoringPlays(plays []scoringPlayResponse) []domain.ScoringPlay {
	out := make([]domain.ScoringPlay, 0, len(plays))
	for _, p := range plays {
		out = append(out, domain.ScoringPlay{
			Inning:      p.About.Inning,
			HalfInning:  p.About.HalfInning,
			Description: p.Result.Description,
			AwayScore:   p.Result.AwayScore,
			HomeScore:   p.Result.HomeScore,
		})
	}
	return out
}

// mapHighlights reduces each highlight to its preferred playback,
// favoring the mp4Avc rendition when present.
func mapHighlights(items []highlightResponse) []domain.Highlight {
	out := make([]domain.Highlight, 0, len(items))
	for _, h := range items {
		out = append(out, domain.Highlight{
			Title:       h.Title,
			Description: h.Description,
			Duration:    h.Duration,
			URL:         preferredPlayback(h.Playbacks),
		})
	}
	return out
}

func preferredPlayback(playbacks []playbackResponse) string {
	for _, p := range playbacks {
		if p.Name == "mp4Avc" {
			return p.URL
		}
	}
	if len(playbacks) > 0 {
		return playbacks[0].URL
	}
	return ""
}

func mapPlayer(p playerResponse) domain.PlayerRecord {
	return domain.PlayerRecord{
		ID:              p.ID,
		FullName:        p.FullName,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		PrimaryNumber:   p.PrimaryNumber,
		CurrentTeam:     p.CurrentTeam.Name,
		PrimaryPosition: p.PrimaryPosition.Abbreviation,
		UseName:         p.UseName,
		BoxscoreName:    p.BoxscoreName,
		NickName:        p.NickName,
		MLBDebutDate:    p.MLBDebutDate,
	}
}

// filterPlayers keeps the directory entries whose searchable fields
// contain the lookup value, case-insensitively.
func filterPlayers(people []playerResponse, lookup string) []domain.PlayerRecord {
	needle := strings.ToLower(strings.TrimSpace(lookup))
	matched := make([]domain.PlayerRecord, 0)
	for _, p := range people {
		if needle == "" || playerMatches(p, needle) {
			matched = append(matched, mapPlayer(p))
		}
	}
	return matched
}

func playerMatches(p playerResponse, needle string) bool {
	fields := []string{
		strconv.Itoa(p.ID),
		p.FullName,
		p.FirstName,
		p.LastName,
		p.PrimaryNumber,
		p.CurrentTeam.Name,
		p.PrimaryPosition.Abbreviation,
		p.UseName,
		p.BoxscoreName,
		p.NickName,
		p.NameFirstLast,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func mapPace(season int, s paceSportResponse) domain.PaceStats {
	return domain.PaceStats{
		Season:                  season,
		HitsPer9Inn:             s.HitsPer9Inn,
		RunsPer9Inn:             s.RunsPer9Inn,
		PitchesPer9Inn:          s.PitchesPer9Inn,
		PlateAppearancesPer9Inn: s.PlateAppearancesPer9Inn,
		HitsPerGame:             s.HitsPerGame,
		RunsPerGame:             s.RunsPerGame,
		InningsPlayedPerGame:    s.InningsPlayedPerGame,
		PitchesPerGame:          s.PitchesPerGame,
		PitchersPerGame:         s.PitchersPerGame,
		PlateAppearancesPerGame: s.PlateAppearancesPerGame,
		TotalGameTime:           s.TotalGameTime,
		TotalInningsPlayed:      s.TotalInningsPlayed,
		TotalHits:               s.TotalHits,
		TotalRuns:               s.TotalRuns,
		TotalPlateAppearances:   s.TotalPlateAppearances,
		TotalPitchers:           s.TotalPitchers,
		TotalPitches:            s.TotalPitches,
		TotalGames:              s.TotalGames,
		TotalExtraInnGames:      s.TotalExtraInnGames,
		TimePerGame:             s.TimePerGame,
		TimePerPitch:            s.TimePerPitch,
		TimePerHit:              s.TimePerHit,
		TimePerRun:              s.TimePerRun,
		TimePerPlateAppearance:  s.TimePerPlateAppearance,
		TimePer9Inn:             s.TimePer9Inn,
	}
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
