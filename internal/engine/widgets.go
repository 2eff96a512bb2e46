package engine

import "context"

// DefaultWidgetOrder is the dashboard layout for a fresh install.
var DefaultWidgetOrder = []string{
	"header", "progress", "focusgoal", "media", "garden",
	"challenge", "reflection", "hints", "links",
}

// WidgetOrder returns the stored dashboard widget order, falling back to the
// default layout when unset or corrupted.
func (s *Service) WidgetOrder(ctx context.Context) ([]string, error) {
	var order []string
	if err := s.store.LoadJSON(ctx, keyWidgets, &order); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return append([]string(nil), DefaultWidgetOrder...), nil
	}
	return order, nil
}

func (s *Service) SetWidgetOrder(ctx context.Context, order []string) error {
	return s.store.SaveJSON(ctx, keyWidgets, order)
}

// AccentColor and Username are plain UI preference singletons.

func (s *Service) AccentColor(ctx context.Context) (string, error) {
	var v string
	if err := s.store.LoadJSON(ctx, keyAccent, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *Service) SetAccentColor(ctx context.Context, color string) error {
	return s.store.SaveJSON(ctx, keyAccent, color)
}

func (s *Service) Username(ctx context.Context) (string, error) {
	var v string
	if err := s.store.LoadJSON(ctx, keyUsername, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *Service) SetUsername(ctx context.Context, name string) error {
	return s.store.SaveJSON(ctx, keyUsername, name)
}
