package models

// Identity is the opaque token identifying the caller of an operation. It is
// issued by the external identity provider and is only ever compared for
// equality; the content has no meaning inside this service.
type Identity string

// Anonymous is the zero identity. It never matches a recorded owner.
const Anonymous Identity = ""

func (i Identity) String() string { return string(i) }
