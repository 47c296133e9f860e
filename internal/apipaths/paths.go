package apipaths

// Inbound API surface. Used by routes and by tests.

const (
	Root       = "/"
	Health     = "/api/health"
	AuthGitHub = "/api/auth/github"
	CreatePost = "/api/create-post"
	UpdatePost = "/api/update-post"
)

func FolderContents(folder string) string {
	return "/api/github/contents/" + folder
}

func FileContents(folder, filename string) string {
	return "/api/github/contents/" + folder + "/" + filename
}

// Contents builds the outbound GitHub Contents API path for a repository file
// or directory
func Contents(owner, repo, path string) string {
	return "/repos/" + owner + "/" + repo + "/contents/" + path
}
