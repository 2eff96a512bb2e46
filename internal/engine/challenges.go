package engine

import "context"

// Challenges is the fixed rotation of small daily dares.
var Challenges = []string{
	"Trinke 2L Wasser",
	"Lies 10 Seiten",
	"Meditiere 5 Minuten",
	"Geh 15 Min spazieren",
	"Räum deinen Schreibtisch auf",
	"Ruf jemanden an, den du magst",
	"Kein Social Media für 1 Stunde",
	"Mach 10 Liegestütze (oder Kniebeugen)",
	"Iss ein Stück Obst",
	"Schreib 3 Dinge auf, für die du dankbar bist",
	"Lerne ein neues Wort",
	"Hör dir einen Podcast an",
	"Mach dein Bett",
	"Plan den morgigen Tag",
	"Atme 2 Min tief durch",
}

// challengeIndex hashes a date string into the rotation. The hash is the
// classic 31x accumulator over the bytes, kept in 32 bits so the same date
// always lands on the same challenge.
func challengeIndex(date string) int {
	var h int32
	for _, c := range date {
		h = (h << 5) - h + int32(c)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return int(n % int64(len(Challenges)))
}

// DailyChallenge returns today's deterministic pick.
func (s *Service) DailyChallenge() string {
	return Challenges[challengeIndex(s.today())]
}

// MarkChallengeDone persists today's completion marker.
func (s *Service) MarkChallengeDone(ctx context.Context) error {
	return s.store.SaveJSON(ctx, keyChallenge, s.today())
}

// IsChallengeDoneToday reports whether today's challenge was marked done.
func (s *Service) IsChallengeDoneToday(ctx context.Context) (bool, error) {
	var date string
	if err := s.store.LoadJSON(ctx, keyChallenge, &date); err != nil {
		return false, err
	}
	return date == s.today(), nil
}
