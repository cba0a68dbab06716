package hal

// appStarter builds the app on its first step, once the backend can run it.
// A construction error is kept and returned by every later step.
type appStarter struct {
	h      HAL
	newApp func(HAL) (func() error, error)
	step   func() error
	err    error
}

func (s *appStarter) Step() error {
	if s.step == nil {
		if s.err != nil {
			return s.err
		}
		step, err := s.newApp(s.h)
		if err != nil {
			s.err = err
			return err
		}
		s.step = step
	}
	return s.step()
}
