package cursorcache

import "context"

// Ingest canonicalizes stmt and records it in s, returning the canonical
// form it was filed under.
func Ingest(ctx context.Context, s *Store, bind func(stmt string) (string, error), stmt string) (string, error) {
	canonical, err := bind(stmt)
	if err != nil {
		return "", err
	}
	if canonical == "" {
		return "", nil
	}
	if err := s.Record(ctx, canonical, stmt); err != nil {
		return "", err
	}
	return canonical, nil
}
