package urls

// Project is the source repository of the debloater tool.
const Project = "https://github.com/muurk/debloater"

// Documentation is the user guide, including adb setup per platform.
const Documentation = "https://muurk.github.io/debloater/"

// CatalogUpstream is the community package database the bundled catalog is derived from.
const CatalogUpstream = "https://github.com/Universal-Debloater-Alliance/universal-android-debloater-next-generation"

// CatalogIssues is where users report a package that is misclassified or missing.
const CatalogIssues = "https://github.com/muurk/debloater/issues/new?template=package.md"

// PlatformTools is the download page for the Android SDK platform tools (adb).
const PlatformTools = "https://developer.android.com/tools/releases/platform-tools"
