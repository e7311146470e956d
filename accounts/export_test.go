package accounts

func (p *Provisioner) WithEUID(euid func() int) *Provisioner {
	p.euid = euid
	return p
}
