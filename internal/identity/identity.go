package identity

import (
	"os/user"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Host identity resolved at process start.
//
// All four values are passed through to the image build so that the container
// user matches the invoking host user, keeping bind-mounted files owned by
// the caller rather than root.
type Tuple struct {
	UID       string // Numeric user ID (e.g., "1001").
	GID       string // Numeric group ID (e.g., "1001").
	Username  string // Login name of the user (e.g., "alice").
	Groupname string // Name of the user's primary group (e.g., "alice").
}

// Resolves the identity of the invoking user.
//
// The user and primary group are looked up once; callers thread the resulting
// tuple through as a value rather than re-reading process state. There are no
// fallback defaults: if any part of the lookup fails, an error is returned
// and nothing downstream should run.
func Current() (Tuple, error) {
	u, err := user.Current()
	if err != nil {
		return Tuple{}, errors.Wrap(err, "resolving current user")
	}

	g, err := user.LookupGroupId(u.Gid)
	if err != nil {
		return Tuple{}, errors.Wrapf(err, "resolving group %s", u.Gid)
	}

	return New(u.Uid, u.Gid, u.Username, g.Name)
}

// Constructs a [Tuple], rejecting incomplete identities.
//
// Every field must be non-blank. Returns [ErrIncomplete] otherwise.
func New(uid, gid, username, groupname string) (Tuple, error) {
	t := Tuple{
		UID:       strings.TrimSpace(uid),
		GID:       strings.TrimSpace(gid),
		Username:  strings.TrimSpace(username),
		Groupname: strings.TrimSpace(groupname),
	}

	if t.UID == "" || t.GID == "" || t.Username == "" || t.Groupname == "" {
		return Tuple{}, errors.Wrapf(ErrIncomplete, "uid=%q gid=%q user=%q group=%q", uid, gid, username, groupname)
	}

	return t, nil
}

// Returns the container home directory for the tuple's user.
//
// The build image creates the user with a home under /home, so this is the
// root under which the project directory is mounted.
func (t Tuple) Home() string {
	return path.Join("/home", t.Username)
}
