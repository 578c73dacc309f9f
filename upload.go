package main

// UploadPlaythroughs sends finished playthroughs to the server: it registers
// the id, then uploads the recording. Like UploadUserData, it runs in its own
// goroutine.
func UploadPlaythroughs(username string, ch chan *Playthrough) {
	for p := range ch {
		InitializeIdInDbHttp(username, p.ReleaseVersion, p.SimulationVersion,
			p.InputVersion, p.Id)
		UploadDataToDbHttp(username, p.ReleaseVersion, p.SimulationVersion,
			p.InputVersion, p.Id, p.Serialize())
	}
}
