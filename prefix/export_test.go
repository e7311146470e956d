package prefix

func (p *Preparer) WithEUID(euid func() int) *Preparer {
	p.euid = euid
	return p
}
