package rest

// User-facing messages, kept identical to what existing clients display.
const (
	msgRegistered       = "Registracija uspešna. Prijavi se."
	msgUsernameTaken    = "Uporabniško ime že obstaja."
	msgBadCredentials   = "Napačno uporabniško ime ali geslo."
	msgNotLoggedIn      = "Ni prijave"
	msgReceiverNotFound = "Prejemnik ne obstaja."
	msgRecipeNotFound   = "Recept ni najden"
	msgMissingFields    = "username and password are required"
)
