package session

// optimisticOp généralise le schéma "mutation optimiste" partagé par le
// panier et la liste d'envies : instantané de l'état, mutation locale
// immédiate, effet distant, restauration de l'instantané si l'effet
// échoue.
type optimisticOp struct {
	// apply applique la mutation locale et la persiste. Exécuté sous verrou.
	apply func()
	// remote tente l'effet distant, hors verrou. Nil = mutation purement
	// locale (mode invité), aucun rollback possible ni nécessaire.
	remote func() error
	// revert restaure l'instantané pré-mutation. Exécuté sous verrou.
	revert func()
	// current indique si l'opération est toujours la plus récente sur sa
	// clé ; une opération dépassée ne restaure rien, l'état appartient au
	// successeur. Nil = toujours courante.
	current func() bool
}

// run exécute l'opération et renvoie l'erreur de l'effet distant, l'état
// local ayant alors été restauré (si l'opération était encore courante).
func (s *Store) run(op optimisticOp) error {
	s.mu.Lock()
	op.apply()
	s.mu.Unlock()

	if op.remote == nil {
		return nil
	}

	if err := op.remote(); err != nil {
		s.mu.Lock()
		if op.current == nil || op.current() {
			op.revert()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}
